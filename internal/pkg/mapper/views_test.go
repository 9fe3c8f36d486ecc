package mapper

import (
	"orca-service/internal/pkg/tidepool_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestToClinicDetail(t *testing.T) {
	clinic := &tidepool_dto.Clinic{
		ID:               "0123456789abcdef01234567",
		Name:             "Acme Diabetes",
		Address:          "1 Main St",
		City:             "Springfield",
		State:            "OR",
		PostalCode:       "97477",
		PhoneNumbers:     []tidepool_dto.PhoneNumber{{Type: "Office", Number: "555-0100"}, {Number: "555-0101"}},
		PatientTags:      []tidepool_dto.PatientTag{{ID: "t1", Name: "Pump"}, {ID: "t2", Name: "CGM"}},
		PreferredBgUnits: "mmol/l",
		CreatedTime:      "2023-02-01T10:00:00Z",
	}

	detail := ToClinicDetail(clinic)
	assert.Equal(t, []string{"1 Main St", "Springfield, OR 97477"}, detail.Address)
	assert.Equal(t, []string{"Office: 555-0100", "555-0101"}, detail.PhoneNumbers)
	assert.Equal(t, []string{"Pump", "CGM"}, detail.Tags)
	assert.Equal(t, "mmol/L", detail.PreferredBgUnits, "units are normalized")
	assert.Equal(t, "Feb 1, 2023", detail.CreatedDate)

	assert.Equal(t, "mg/dL", ToClinicDetail(&tidepool_dto.Clinic{ID: "x", Name: "y"}).PreferredBgUnits, "mg/dL is the default")
}

func TestToUserSummary(t *testing.T) {
	user := &tidepool_dto.User{UserID: "abcdef0123", Emails: []string{"jane@tidepool.org"}, EmailVerified: true}

	t.Run("Profile name wins", func(t *testing.T) {
		summary := ToUserSummary(user, &tidepool_dto.Profile{FullName: "Jane Doe"})
		assert.Equal(t, "Jane Doe", summary.FullName)
		assert.Equal(t, "jane@tidepool.org", summary.Email)
		assert.Equal(t, "patient", summary.Kind)
	})

	t.Run("Falls back to the patient name", func(t *testing.T) {
		summary := ToUserSummary(user, &tidepool_dto.Profile{Patient: &tidepool_dto.ProfilePatient{FullName: "Jane P."}})
		assert.Equal(t, "Jane P.", summary.FullName)
	})

	t.Run("No profile", func(t *testing.T) {
		assert.Empty(t, ToUserSummary(user, nil).FullName)
	})
}

func TestToProfileView(t *testing.T) {
	view := ToProfileView(&tidepool_dto.Profile{
		FullName: "Parent Name",
		Patient:  &tidepool_dto.ProfilePatient{FullName: "Kid Name", Birthday: "2010-06-16", Mrn: "M1"},
	}, testNow)
	require.NotNil(t, view)
	assert.Equal(t, "Kid Name", view.FullName)
	assert.Equal(t, "Jun 16, 2010", view.BirthDate)
	require.NotNil(t, view.Age)
	assert.Equal(t, 13, *view.Age, "birthday tomorrow")

	assert.Nil(t, ToProfileView(nil, testNow))
}

func TestToPatientSummary(t *testing.T) {
	patient := &tidepool_dto.Patient{ID: "p1", FullName: "Jane Doe", BirthDate: "1990-01-01", Tags: []string{"t1", "gone"}}
	clinic := &tidepool_dto.Clinic{PatientTags: []tidepool_dto.PatientTag{{ID: "t1", Name: "Pump"}}}

	summary := ToPatientSummary(patient, clinic, testNow)
	assert.Equal(t, []string{"Pump", "gone"}, summary.Tags)
	require.NotNil(t, summary.Age)
	assert.Equal(t, 34, *summary.Age)
	assert.Equal(t, "Jan 1, 1990", summary.BirthDate)

	assert.Equal(t, []string{"t1", "gone"}, ToPatientSummary(patient, nil, testNow).Tags)
}

func TestToClinicianSummary(t *testing.T) {
	summary := ToClinicianSummary(&tidepool_dto.Clinician{InviteID: "i1", Email: "a@b.co", Roles: []string{"CLINIC_ADMIN", "PRESCRIBER"}})
	assert.True(t, summary.Pending)
	assert.True(t, summary.IsAdmin)
	assert.True(t, summary.IsPrescriber)

	assert.NotNil(t, ToClinicianSummary(&tidepool_dto.Clinician{Email: "a@b.co"}).Roles)
}

func TestToPrescriptionSummary(t *testing.T) {
	summary := ToPrescriptionSummary(&tidepool_dto.Prescription{
		ID:    "rx1",
		State: "submitted",
		LatestRevision: &tidepool_dto.PrescriptionRevision{
			Attributes: tidepool_dto.PrescriptionAttributes{FirstName: "Jane", LastName: "Doe", Email: "jane@b.co"},
		},
	})
	assert.Equal(t, "Jane Doe", summary.PatientName)
	assert.Equal(t, "jane@b.co", summary.Email)
}

func TestLinks(t *testing.T) {
	assert.Equal(t, "/clinics/c1/clinicians/u1", ClinicianLink("c1", "u1"))
	assert.Equal(t, "/clinics/c1/patients/u1", PatientLink("c1", "u1"))
}
