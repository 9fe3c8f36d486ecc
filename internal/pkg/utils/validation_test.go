package utils

import (
	"orca-service/internal/pkg/dto/requests"
	"orca-service/internal/pkg/exceptions"
	"orca-service/internal/pkg/tidepool_dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testClinicID       = "0123456789abcdef01234567"
	testOtherClinicID  = "76543210fedcba9876543210"
	testTidepoolUserID = "abcdef0123"
)

func TestValidateUpdateClinicianRoles(t *testing.T) {
	t.Run("Valid admin role", func(t *testing.T) {
		request := requests.UpdateClinicianRoles{
			ClinicID:    testClinicID,
			ClinicianID: testTidepoolUserID,
			Role:        "CLINIC_ADMIN",
			Prescriber:  true,
		}
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Unknown role is reported under the form field name", func(t *testing.T) {
		request := requests.UpdateClinicianRoles{
			ClinicID:    testClinicID,
			ClinicianID: testTidepoolUserID,
			Role:        "PRESCRIBER",
		}
		err := ValidateStruct(request)
		require.Error(t, err)

		fields := exceptions.ValidationErrorsByField(err)
		assert.Equal(t, "must be one of [CLINIC_ADMIN, CLINIC_MEMBER]", fields["role"])
	})

	t.Run("Malformed clinic id", func(t *testing.T) {
		request := requests.UpdateClinicianRoles{
			ClinicID:    "clinic-1",
			ClinicianID: testTidepoolUserID,
			Role:        "CLINIC_MEMBER",
		}
		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Contains(t, exceptions.ValidationErrorsByField(err), "ClinicID")
	})
}

func TestValidateClinicMergeReport(t *testing.T) {
	t.Run("Distinct clinics", func(t *testing.T) {
		request := requests.ClinicMergeReport{SourceClinicID: testClinicID, TargetClinicID: testOtherClinicID, Format: "xlsx"}
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Same clinic on both sides", func(t *testing.T) {
		request := requests.ClinicMergeReport{SourceClinicID: testClinicID, TargetClinicID: testClinicID}
		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Contains(t, exceptions.ValidationErrorsByField(err), "targetClinicId")
	})

	t.Run("Unsupported format", func(t *testing.T) {
		request := requests.ClinicMergeReport{SourceClinicID: testClinicID, TargetClinicID: testOtherClinicID, Format: "csv"}
		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Equal(t, "must be one of [json, xlsx]", exceptions.ValidationErrorsByField(err)["format"])
	})
}

func TestValidateDataExport(t *testing.T) {
	t.Run("Valid range and lower case units", func(t *testing.T) {
		request := requests.DataExport{
			UserID:    testTidepoolUserID,
			Format:    "json",
			BGUnits:   "mmol/l",
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
		}
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("End date before start date", func(t *testing.T) {
		request := requests.DataExport{
			UserID:    testTidepoolUserID,
			Format:    "xlsx",
			StartDate: "2024-02-01",
			EndDate:   "2024-01-31",
		}
		err := ValidateStruct(request)
		require.Error(t, err)
		assert.Equal(t, "must be on or after startDate", exceptions.ValidationErrorsByField(err)["endDate"])
	})

	t.Run("Bad units and date format", func(t *testing.T) {
		request := requests.DataExport{
			UserID:    testTidepoolUserID,
			Format:    "json",
			BGUnits:   "mg",
			StartDate: "01/02/2024",
		}
		err := ValidateStruct(request)
		require.Error(t, err)

		fields := exceptions.ValidationErrorsByField(err)
		assert.Contains(t, fields, "bgUnits")
		assert.Contains(t, fields, "startDate")
	})
}

func TestValidateUrlParamID(t *testing.T) {
	assert.NoError(t, ValidateUrlParamID(testClinicID, "clinic_id", IsObjectID))

	err := ValidateUrlParamID("nope", "clinic_id", IsObjectID)
	require.Error(t, err)
	assert.Equal(t, 400, exceptions.StatusCodeOf(err))
}

func TestValidateResponse(t *testing.T) {
	t.Run("Single entity", func(t *testing.T) {
		assert.NoError(t, ValidateResponse(&tidepool_dto.Clinic{ID: testClinicID, Name: "Acme"}))

		err := ValidateResponse(&tidepool_dto.Clinic{Name: "Acme"})
		require.Error(t, err)
		assert.Contains(t, exceptions.ValidationErrorsByField(err), "id")
	})

	t.Run("Every list element is checked", func(t *testing.T) {
		clinicians := []tidepool_dto.Clinician{
			{Email: "a@b.co", Roles: []string{"CLINIC_MEMBER"}},
			{Email: "c@d.co"},
		}
		err := ValidateResponse(clinicians)
		require.Error(t, err, "a clinician without roles is rejected")
		assert.Contains(t, exceptions.ValidationErrorsByField(err), "roles")
	})

	t.Run("Nested tags are checked", func(t *testing.T) {
		clinic := &tidepool_dto.Clinic{ID: testClinicID, Name: "Acme", PatientTags: []tidepool_dto.PatientTag{{Name: "no id"}}}
		assert.Error(t, ValidateResponse(clinic))
	})

	t.Run("Nil and empty are fine", func(t *testing.T) {
		var clinic *tidepool_dto.Clinic
		assert.NoError(t, ValidateResponse(clinic))
		assert.NoError(t, ValidateResponse([]tidepool_dto.Patient{}))
	})
}
