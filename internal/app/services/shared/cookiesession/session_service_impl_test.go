package cookiesession

import (
	"fmt"
	"net/http/httptest"
	"orca-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSessionService(t *testing.T) *sessionService {
	stores, err := NewSessionStores(testSecret, time.Hour, false, zap.NewNop())
	require.NoError(t, err)
	return NewSessionService(stores, 10, zap.NewNop()).(*sessionService)
}

func TestSessionServiceRecentLists(t *testing.T) {
	service := newTestSessionService(t)

	t.Run("Push then read on the next request", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("GET", "/users/abc", nil)
		require.NoError(t, service.PushRecentUser(recorder, request, models.RecentUser{UserID: "abc", Email: "a@b.co"}))

		recent := service.RecentUsers(replay(recorder))
		require.Len(t, recent, 1)
		assert.Equal(t, "a@b.co", recent[0].Email)
	})

	t.Run("Repeated views stay unique and capped", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/", nil)
		for i := 0; i < 12; i++ {
			recorder := httptest.NewRecorder()
			require.NoError(t, service.PushRecentClinic(recorder, request, models.RecentClinic{ClinicID: fmt.Sprintf("c%d", i%11)}))
			request = replay(recorder)
		}

		recent := service.RecentClinics(request)
		assert.Len(t, recent, 10)
		assert.Equal(t, "c0", recent[0].ClinicID, "the revisited clinic moves to the front")
	})

	t.Run("Same patient in two clinics gives two entries", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("GET", "/", nil)
		require.NoError(t, service.PushRecentPatient(recorder, request, models.RecentPatient{ClinicID: "c1", PatientID: "p1"}))

		next := httptest.NewRecorder()
		require.NoError(t, service.PushRecentPatient(next, replay(recorder), models.RecentPatient{ClinicID: "c2", PatientID: "p1"}))

		assert.Len(t, service.RecentPatients(replay(next)), 2)
	})

	t.Run("No cookie reads as an empty list", func(t *testing.T) {
		recent := service.RecentClinicians(httptest.NewRequest("GET", "/", nil))
		assert.NotNil(t, recent)
		assert.Empty(t, recent)
	})
}

func TestSessionServiceFlash(t *testing.T) {
	service := newTestSessionService(t)

	recorder := httptest.NewRecorder()
	require.NoError(t, service.FlashError(recorder, httptest.NewRequest("POST", "/", nil), "Failed to update clinician roles: boom"))

	popRecorder := httptest.NewRecorder()
	message, err := service.PopFlashError(popRecorder, replay(recorder))
	require.NoError(t, err)
	assert.Equal(t, "Failed to update clinician roles: boom", message)

	cookies := popRecorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge, "the consumed flash clears its cookie")

	message, err = service.PopFlashError(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Empty(t, message)
}
