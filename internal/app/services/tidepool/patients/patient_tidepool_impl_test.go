package patients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"orca-service/internal/app/services/tidepool/client"
	"orca-service/internal/pkg/dto/requests"
	"testing"
	"time"

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

func TestPatientTidepoolClient(t *testing.T) {
	ctx := context.Background()

	t.Run("FindAll returns the page and total count", func(t *testing.T) {
		c := NewPatientTidepoolClient(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/clinics/c1/patients", r.URL.Path)
			assert.Equal(t, "doe", r.URL.Query().Get("search"))
			_, _ = io.WriteString(w, `{"data":[{"id":"p1","fullName":"Jane Doe","birthDate":"1990-04-01"}],"meta":{"count":31}}`)
		}), zap.NewNop())

		patients, err := c.FindAll(ctx, "c1", &requests.ListQuery{Search: "doe", Limit: 25})
		require.NoError(t, err)
		assert.Equal(t, 31, patients.Meta.Count)
		require.Len(t, patients.Data, 1)
	})

	t.Run("A patient without a birth date fails validation", func(t *testing.T) {
		c := NewPatientTidepoolClient(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"data":[{"id":"p1","fullName":"Jane Doe"}],"meta":{"count":1}}`)
		}), zap.NewNop())

		_, err := c.FindAll(ctx, "c1", nil)
		assert.Error(t, err)
	})

	t.Run("FindPatientByID", func(t *testing.T) {
		c := NewPatientTidepoolClient(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/clinics/c1/patients/p1", r.URL.Path)
			_, _ = io.WriteString(w, `{"id":"p1","fullName":"Jane Doe","birthDate":"1990-04-01","mrn":"MRN1","permissions":{"view":{},"upload":{}}}`)
		}), zap.NewNop())

		patient, err := c.FindPatientByID(ctx, "c1", "p1")
		require.NoError(t, err)
		assert.Equal(t, []string{"upload", "view"}, patient.PermissionNames())
	})
}
