package reports

import (
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/tidepool_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeMerge(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	source := &MergeInput{
		Clinic: tidepool_dto.Clinic{
			ID:          "aaaaaaaaaaaaaaaaaaaaaaaa",
			Name:        "Source",
			PatientTags: []tidepool_dto.PatientTag{{ID: "s1", Name: "Pump"}, {ID: "s2", Name: "Loop"}, {ID: "s3", Name: "loop "}},
		},
		Patients: []tidepool_dto.Patient{
			{ID: "p-shared", FullName: "Shared Account", BirthDate: "2000-01-01"},
			{ID: "p-mrn", FullName: "Ann Smith", BirthDate: "1980-05-05", Mrn: "MRN-1"},
			{ID: "p-name", FullName: "Bob  Jones", BirthDate: "1975-07-07", Email: "bob@b.co"},
			{ID: "p-unique", FullName: "Carl Unique", BirthDate: "1999-09-09"},
		},
		Clinicians: []tidepool_dto.Clinician{
			{ID: "u-shared", Email: "doc@b.co", Roles: []string{"CLINIC_ADMIN"}},
			{InviteID: "inv1", Email: "Invitee@B.co", Roles: []string{"CLINIC_MEMBER"}},
			{ID: "u-only", Email: "only@b.co", Roles: []string{"CLINIC_MEMBER"}},
		},
	}
	target := &MergeInput{
		Clinic: tidepool_dto.Clinic{
			ID:          "bbbbbbbbbbbbbbbbbbbbbbbb",
			Name:        "Target",
			PatientTags: []tidepool_dto.PatientTag{{ID: "t1", Name: "PUMP"}},
		},
		Patients: []tidepool_dto.Patient{
			{ID: "p-shared", FullName: "Shared Account", BirthDate: "2000-01-01"},
			{ID: "p-other-mrn", FullName: "Annie Smith", BirthDate: "1980-05-06", Mrn: "mrn-1"},
			{ID: "p-other-name", FullName: "bob jones", BirthDate: "1975-07-07", Email: "BOB@b.co"},
		},
		Clinicians: []tidepool_dto.Clinician{
			{ID: "u-shared", Email: "doc@b.co", Roles: []string{"CLINIC_MEMBER"}},
			{ID: "u-invitee", Email: "invitee@b.co", Roles: []string{"CLINIC_MEMBER"}},
		},
	}

	report := AnalyzeMerge(source, target, now)

	t.Run("Same account in both clinics is a duplicate", func(t *testing.T) {
		require.Len(t, report.DuplicateAccounts, 1)
		assert.Equal(t, "p-shared", report.DuplicateAccounts[0].Source.ID)
		assert.Equal(t, "p-shared", report.DuplicateAccounts[0].Target.ID)
	})

	t.Run("Likely duplicates carry their reasons", func(t *testing.T) {
		require.Len(t, report.LikelyDuplicates, 2)

		mrn := report.LikelyDuplicates[0]
		assert.Equal(t, "p-mrn", mrn.Source.ID)
		assert.Equal(t, "p-other-mrn", mrn.Target.ID)
		assert.Equal(t, []string{constvars.ReportMergeReasonMrn}, mrn.Reasons, "MRN matches ignoring case")

		name := report.LikelyDuplicates[1]
		assert.Equal(t, "p-name", name.Source.ID)
		assert.Equal(t, []string{constvars.ReportMergeReasonEmail, constvars.ReportMergeReasonNameBirth}, name.Reasons)
	})

	t.Run("Clinicians match on id or email", func(t *testing.T) {
		require.Len(t, report.SharedClinicians, 2)
		assert.Equal(t, "u-shared", report.SharedClinicians[0].Target.ID)
		assert.Equal(t, "u-invitee", report.SharedClinicians[1].Target.ID, "pending invite matched by email")
	})

	t.Run("Tags compare by name ignoring case", func(t *testing.T) {
		assert.Equal(t, []string{"Pump"}, report.SharedTags)
		assert.Equal(t, []string{"Loop"}, report.NewTags, "repeated source tag is counted once")
	})

	t.Run("Summary counts", func(t *testing.T) {
		summary := report.Summary
		assert.Equal(t, 4, summary.SourcePatients)
		assert.Equal(t, 3, summary.TargetPatients)
		assert.Equal(t, 6, summary.ResultingPatients)
		assert.Equal(t, 3, summary.ResultingClinicians)
		assert.Equal(t, 2, summary.ResultingTags)
		assert.Equal(t, "2024-06-15T12:00:00Z", report.GeneratedAt)
	})

	t.Run("Empty clinics give empty lists", func(t *testing.T) {
		empty := AnalyzeMerge(&MergeInput{}, &MergeInput{}, now)
		assert.NotNil(t, empty.DuplicateAccounts)
		assert.NotNil(t, empty.LikelyDuplicates)
		assert.NotNil(t, empty.SharedClinicians)
		assert.NotNil(t, empty.NewTags)
		assert.Zero(t, empty.Summary.ResultingPatients)
	})
}
