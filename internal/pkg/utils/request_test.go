package utils

import (
	"net/http"
	"net/http/httptest"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/requests"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaginationRequest(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		pagination := BuildPaginationRequest(httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, constvars.AppDefaultPage, pagination.Page)
		assert.Equal(t, constvars.AppDefaultPageSize, pagination.PageSize)
		assert.Equal(t, 0, pagination.Offset())
	})

	t.Run("Explicit values and offset", func(t *testing.T) {
		pagination := BuildPaginationRequest(httptest.NewRequest(http.MethodGet, "/x?page=3&page_size=10", nil))
		assert.Equal(t, 3, pagination.Page)
		assert.Equal(t, 20, pagination.Offset())
	})

	t.Run("Page size is capped", func(t *testing.T) {
		pagination := BuildPaginationRequest(httptest.NewRequest(http.MethodGet, "/x?page_size=5000", nil))
		assert.Equal(t, constvars.AppMaxPageSize, pagination.PageSize)
	})
}

func TestParseRequestBody(t *testing.T) {
	t.Run("HTML form with ticked checkbox", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/clinics/c/clinicians/u", strings.NewReader("role=CLINIC_ADMIN&prescriber=on&clinicId=injected"))
		request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

		var body requests.UpdateClinicianRoles
		require.NoError(t, ParseRequestBody(request, &body))
		assert.Equal(t, "CLINIC_ADMIN", body.Role)
		assert.True(t, body.Prescriber)
		assert.Empty(t, body.ClinicID, "path ids must not be settable from the form")
	})

	t.Run("HTML form without checkbox", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/reports/clinic-merge", strings.NewReader("sourceClinicId=a&targetClinicId=b"))
		request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

		var body requests.ClinicMergeReport
		require.NoError(t, ParseRequestBody(request, &body))
		assert.Equal(t, "a", body.SourceClinicID)
		assert.Equal(t, "b", body.TargetClinicID)
	})

	t.Run("JSON body", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"role":"CLINIC_MEMBER","prescriber":false}`))
		request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)

		var body requests.UpdateClinicianRoles
		require.NoError(t, ParseRequestBody(request, &body))
		assert.Equal(t, "CLINIC_MEMBER", body.Role)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"role":`))
		request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

		var body requests.UpdateClinicianRoles
		assert.Error(t, ParseRequestBody(request, &body))
	})
}
