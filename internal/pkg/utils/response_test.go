package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/dto/responses"
	"orca-service/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildPaginationResponse(t *testing.T) {
	t.Run("Middle page links both ways", func(t *testing.T) {
		pagination := BuildPaginationResponse(60, 2, 25, "/clinics/x/patients")
		assert.Equal(t, "/clinics/x/patients?page=3&page_size=25", pagination.NextURL)
		assert.Equal(t, "/clinics/x/patients?page=1&page_size=25", pagination.PrevURL)
	})

	t.Run("Last page has no next link", func(t *testing.T) {
		pagination := BuildPaginationResponse(50, 2, 25, "/p")
		assert.Empty(t, pagination.NextURL)
	})

	t.Run("Open ended pagination follows a full page", func(t *testing.T) {
		full := BuildOpenPaginationResponse(25, 1, 25, "/c")
		assert.Equal(t, "/c?page=2&page_size=25", full.NextURL)
		assert.Empty(t, full.PrevURL)

		partial := BuildOpenPaginationResponse(3, 2, 25, "/c")
		assert.Empty(t, partial.NextURL)
		assert.Equal(t, "/c?page=1&page_size=25", partial.PrevURL)
	})
}

func TestBuildSuccessResponseWithToast(t *testing.T) {
	recorder := httptest.NewRecorder()
	toast := &responses.Toast{Type: responses.ToastTypeError, Message: "Failed to update clinician roles: boom"}

	BuildSuccessResponseWithToast(recorder, constvars.StatusOK, "ok", toast, map[string]string{"k": "v"})

	assert.Equal(t, constvars.StatusOK, recorder.Code)
	assert.Equal(t, constvars.MIMEApplicationJSON, recorder.Header().Get(constvars.HeaderContentType))

	var body responses.ResponseDTO
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotNil(t, body.Toast)
	assert.Equal(t, toast.Message, body.Toast.Message)
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("Custom error keeps status and field errors", func(t *testing.T) {
		validationErr := ValidateStruct(requests.ClinicReport{ClinicID: "bad"})
		require.Error(t, validationErr)

		recorder := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), recorder, exceptions.ErrInputValidation(validationErr))

		assert.Equal(t, constvars.StatusBadRequest, recorder.Code)
		var body exceptions.CustomError
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Contains(t, body.Fields, "clinicId")
		assert.NotEmpty(t, body.DevMessage, "dev message is shown outside production")
	})

	t.Run("Plain error becomes a 500", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), recorder, errors.New("boom"))

		assert.Equal(t, constvars.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), constvars.ErrClientSomethingWrongWithApplication)
	})

	t.Run("Production hides developer details", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.AppEnvProduction)
		recorder := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), recorder, exceptions.ErrTidepoolNotFound(nil, constvars.TidepoolResourceClinic))

		assert.Equal(t, constvars.StatusNotFound, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "dev_message")
		assert.NotContains(t, recorder.Body.String(), "locations")
	})
}

func TestBuildPlainTextErrorResponse(t *testing.T) {
	recorder := httptest.NewRecorder()
	BuildPlainTextErrorResponse(zap.NewNop(), recorder, exceptions.ErrTidepoolNotFound(nil, constvars.TidepoolResourceUser))

	assert.Equal(t, constvars.StatusNotFound, recorder.Code)
	assert.Equal(t, constvars.MIMETextPlainCharsetUTF8, recorder.Header().Get(constvars.HeaderContentType))
	assert.Equal(t, "user not found", recorder.Body.String())
}

func TestBuildRedirectResponse(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/users?search=abcdef0123", nil)

	BuildRedirectResponse(recorder, request, "/users/abcdef0123")

	assert.Equal(t, constvars.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/users/abcdef0123", recorder.Header().Get(constvars.HeaderLocation))
}

func TestBuildFileResponse(t *testing.T) {
	recorder := httptest.NewRecorder()
	BuildFileResponse(recorder, constvars.MIMEApplicationXLSX, "report.xlsx", []byte("PK"))

	assert.Equal(t, constvars.StatusOK, recorder.Code)
	assert.Equal(t, `attachment; filename="report.xlsx"`, recorder.Header().Get(constvars.HeaderContentDisposition))
	assert.Equal(t, "PK", recorder.Body.String())
}
