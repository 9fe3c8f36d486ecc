package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/tidepool_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTokenProvider struct {
	mock.Mock
}

func (m *MockTokenProvider) Token(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockTokenProvider) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *MockTokenProvider) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := new(MockTokenProvider)
	tokens.On("Token", mock.Anything).Return("server-token", nil)

	return NewClient(Config{BaseUrl: server.URL + "/", Timeout: time.Second, MaxRequestsPerSecond: 50}, tokens, zap.NewNop()), tokens
}

func TestClientGet(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-42")

	t.Run("Decodes and validates the answer", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/clinics/abc", r.URL.Path)
			assert.Equal(t, "server-token", r.Header.Get(constvars.TidepoolHeaderSessionToken))
			assert.Equal(t, "req-42", r.Header.Get(constvars.HeaderXRequestID))
			_, _ = io.WriteString(w, `{"id":"abc","name":"Acme","shareCode":"ABCD-EFGH-JKLM"}`)
		})

		clinic := new(tidepool_dto.Clinic)
		require.NoError(t, client.Get(ctx, "/v1/clinics/abc", nil, constvars.TidepoolResourceClinic, clinic))
		assert.Equal(t, "Acme", clinic.Name)
	})

	t.Run("Not found keeps 404", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"code":404,"message":"clinic not found"}`)
		})

		err := client.Get(ctx, "/v1/clinics/missing", nil, constvars.TidepoolResourceClinic, new(tidepool_dto.Clinic))
		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
		assert.Equal(t, "clinic not found", exceptions.ClientMessageOf(err))
	})

	t.Run("Unauthorized drops the cached token and becomes 500", func(t *testing.T) {
		client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		tokens.On("Invalidate", mock.Anything).Return(nil)

		err := client.Get(ctx, "/v1/clinics/abc", nil, constvars.TidepoolResourceClinic, new(tidepool_dto.Clinic))
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCodeOf(err))
		tokens.AssertCalled(t, "Invalidate", mock.Anything)
	})

	t.Run("Client errors become 400 with the API message", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"reason":"search too short"}`)
		})

		err := client.Get(ctx, "/v1/clinics", url.Values{"search": {"a"}}, constvars.TidepoolResourceClinic, &[]tidepool_dto.Clinic{})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
		assert.Contains(t, exceptions.ClientMessageOf(err), "search too short")
	})

	t.Run("Server errors become 500", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		err := client.Get(ctx, "/v1/clinics/abc", nil, constvars.TidepoolResourceClinic, new(tidepool_dto.Clinic))
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCodeOf(err))
		assert.Equal(t, constvars.ErrClientUpstreamUnavailable, exceptions.ClientMessageOf(err))
	})

	t.Run("Entity missing its id fails validation", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"name":"Acme"}`)
		})

		err := client.Get(ctx, "/v1/clinics/abc", nil, constvars.TidepoolResourceClinic, new(tidepool_dto.Clinic))
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCodeOf(err))
		assert.Contains(t, err.Error(), "schema validation")
	})

	t.Run("Malformed JSON is a decode error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"id":`)
		})

		err := client.Get(ctx, "/v1/clinics/abc", nil, constvars.TidepoolResourceClinic, new(tidepool_dto.Clinic))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode")
	})
}

func TestClientSend(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email":"a@b.co","roles":["CLINIC_ADMIN"]}`, string(body))
		_, _ = w.Write(body)
	})

	updated := new(tidepool_dto.Clinician)
	err := client.Send(context.Background(), http.MethodPut, "/v1/clinics/c/clinicians/u", &tidepool_dto.Clinician{
		Email: "a@b.co",
		Roles: []string{"CLINIC_ADMIN"},
	}, constvars.TidepoolResourceClinician, updated)
	require.NoError(t, err)
	assert.True(t, updated.IsAdmin())
}

func TestUpstreamMessage(t *testing.T) {
	assert.Equal(t, "boom", upstreamMessage([]byte(`{"message":"boom"}`), "500"))
	assert.Equal(t, "bad", upstreamMessage([]byte(`{"error":"bad"}`), "400"))
	assert.Equal(t, "400 Bad Request", upstreamMessage([]byte(`{"code":400}`), "400 Bad Request"))
	assert.Equal(t, "plain failure", upstreamMessage([]byte("plain failure\n"), "500"))
	assert.Equal(t, "502 Bad Gateway", upstreamMessage(nil, "502 Bad Gateway"))
}

func TestEncodeListQuery(t *testing.T) {
	query := EncodeListQuery(&requests.ListQuery{Search: "acme", Offset: 50, Limit: 25})
	assert.Equal(t, "limit=25&offset=50&search=acme", query.Encode())
	assert.Empty(t, EncodeListQuery(&requests.ListQuery{}).Encode())
	assert.Empty(t, EncodeListQuery(nil).Encode())
}
