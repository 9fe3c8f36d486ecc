package clinicians

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"orca-service/internal/app/services/tidepool/client"
	"orca-service/internal/pkg/tidepool_dto"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticTokenProvider struct{}

func (staticTokenProvider) Token(ctx context.Context) (string, error) { return "server-token", nil }

func (staticTokenProvider) Invalidate(ctx context.Context) error { return nil }

func newTestClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return client.NewClient(client.Config{BaseUrl: server.URL, Timeout: time.Second}, staticTokenProvider{}, zap.NewNop())
}

func TestClinicianTidepoolClient(t *testing.T) {
	ctx := context.Background()

	t.Run("FindAll lists a clinic's clinicians", func(t *testing.T) {
		c := NewClinicianTidepoolClient(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/clinics/c1/clinicians", r.URL.Path)
			_, _ = io.WriteString(w, `[{"id":"u1","email":"a@b.co","roles":["CLINIC_MEMBER"]},{"inviteId":"i1","email":"c@d.co","roles":["CLINIC_ADMIN"]}]`)
		}), zap.NewNop())

		clinicians, err := c.FindAll(ctx, "c1", nil)
		require.NoError(t, err)
		require.Len(t, clinicians, 2)
		assert.True(t, clinicians[1].IsPendingInvite())
	})

	t.Run("UpdateClinician sends the full record", func(t *testing.T) {
		c := NewClinicianTidepoolClient(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/v1/clinics/c1/clinicians/u1", r.URL.Path)

			var sent tidepool_dto.Clinician
			require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
			assert.Equal(t, "Jane", sent.Name)
			assert.ElementsMatch(t, []string{"CLINIC_ADMIN", "PRESCRIBER"}, sent.Roles)

			_ = json.NewEncoder(w).Encode(sent)
		}), zap.NewNop())

		updated, err := c.UpdateClinician(ctx, "c1", "u1", &tidepool_dto.Clinician{
			ID:    "u1",
			Email: "a@b.co",
			Name:  "Jane",
			Roles: []string{"CLINIC_ADMIN", "PRESCRIBER"},
		})
		require.NoError(t, err)
		assert.True(t, updated.IsPrescriber())
	})

	t.Run("UpdateClinician rejected by the API is a 400", func(t *testing.T) {
		c := NewClinicianTidepoolClient(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"message":"the clinic must have at least one admin"}`)
		}), zap.NewNop())

		_, err := c.UpdateClinician(ctx, "c1", "u1", &tidepool_dto.Clinician{Email: "a@b.co", Roles: []string{"CLINIC_MEMBER"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one admin")
	})
}
