package mapper

import (
	"fmt"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/responses"
	"orca-service/internal/pkg/tidepool_dto"
	"orca-service/internal/pkg/utils"
	"strings"
	"time"
)

func ToClinicSummary(clinic *tidepool_dto.Clinic) responses.ClinicSummary {
	return responses.ClinicSummary{
		ID:          clinic.ID,
		Name:        clinic.Name,
		ShareCode:   clinic.ShareCode,
		ClinicType:  clinic.ClinicType,
		Tier:        clinic.Tier,
		CreatedDate: utils.FormatDate(clinic.CreatedTime),
	}
}

func ToClinicDetail(clinic *tidepool_dto.Clinic) responses.ClinicDetail {
	units, ok := utils.NormalizeBGUnits(clinic.PreferredBgUnits)
	if !ok {
		units = constvars.BGUnitsMgdl
	}

	detail := responses.ClinicDetail{
		ClinicSummary:    ToClinicSummary(clinic),
		ClinicSize:       clinic.ClinicSize,
		Address:          addressLines(clinic),
		Country:          clinic.Country,
		Website:          clinic.Website,
		PreferredBgUnits: units,
		TierDescription:  clinic.TierDescription,
		CanMigrate:       clinic.CanMigrate,
		UpdatedDate:      utils.FormatDate(clinic.UpdatedTime),
	}
	for _, phone := range clinic.PhoneNumbers {
		if phone.Type != "" {
			detail.PhoneNumbers = append(detail.PhoneNumbers, fmt.Sprintf("%s: %s", phone.Type, phone.Number))
			continue
		}
		detail.PhoneNumbers = append(detail.PhoneNumbers, phone.Number)
	}
	for _, tag := range clinic.PatientTags {
		detail.Tags = append(detail.Tags, tag.Name)
	}
	return detail
}

func addressLines(clinic *tidepool_dto.Clinic) []string {
	var lines []string
	if clinic.Address != "" {
		lines = append(lines, clinic.Address)
	}

	locality := clinic.City
	if clinic.State != "" {
		if locality != "" {
			locality += ", "
		}
		locality += clinic.State
	}
	if clinic.PostalCode != "" {
		locality = strings.TrimSpace(locality + " " + clinic.PostalCode)
	}
	if locality != "" {
		lines = append(lines, locality)
	}
	return lines
}

// ToUserSummary merges the account with its profile. profile may be nil.
func ToUserSummary(user *tidepool_dto.User, profile *tidepool_dto.Profile) responses.UserSummary {
	summary := responses.UserSummary{
		UserID:        user.UserID,
		Email:         user.PrimaryEmail(),
		Kind:          user.Kind(),
		Roles:         user.Roles,
		EmailVerified: user.EmailVerified,
		TermsAccepted: utils.FormatDate(user.TermsAccepted),
		CreatedDate:   utils.FormatDate(user.CreatedTime),
	}
	if profile != nil {
		summary.FullName = profile.FullName
		if summary.FullName == "" && profile.Patient != nil {
			summary.FullName = profile.Patient.FullName
		}
	}
	return summary
}

func ToProfileView(profile *tidepool_dto.Profile, now time.Time) *responses.ProfileView {
	if profile == nil {
		return nil
	}

	view := &responses.ProfileView{FullName: profile.FullName}
	if patient := profile.Patient; patient != nil {
		if patient.FullName != "" {
			view.FullName = patient.FullName
		}
		view.BirthDate = utils.FormatDate(patient.Birthday)
		if age, ok := utils.AgeFromBirthDate(patient.Birthday, now); ok {
			view.Age = &age
		}
		view.DiagnosisDate = utils.FormatDate(patient.DiagnosisDate)
		view.DiagnosisType = patient.DiagnosisType
		view.Mrn = patient.Mrn
		view.TargetDevices = patient.TargetDevices
	}
	if clinic := profile.Clinic; clinic != nil {
		view.ClinicName = clinic.Name
		view.ClinicRole = clinic.Role
		view.NPI = clinic.NPI
	}
	if clinician := profile.Clinician; clinician != nil {
		if view.ClinicRole == "" {
			view.ClinicRole = clinician.Role
		}
		if view.NPI == "" {
			view.NPI = clinician.NPI
		}
	}
	return view
}

func ToClinicianSummary(clinician *tidepool_dto.Clinician) responses.ClinicianSummary {
	roles := clinician.Roles
	if roles == nil {
		roles = []string{}
	}
	return responses.ClinicianSummary{
		ID:           clinician.ID,
		InviteID:     clinician.InviteID,
		Email:        clinician.Email,
		Name:         clinician.Name,
		Roles:        roles,
		IsAdmin:      clinician.IsAdmin(),
		IsPrescriber: clinician.IsPrescriber(),
		Pending:      clinician.IsPendingInvite(),
		CreatedDate:  utils.FormatDate(clinician.CreatedTime),
	}
}

// ToPatientSummary resolves tag ids against clinic when it is given.
func ToPatientSummary(patient *tidepool_dto.Patient, clinic *tidepool_dto.Clinic, now time.Time) responses.PatientSummary {
	summary := responses.PatientSummary{
		ID:        patient.ID,
		FullName:  patient.FullName,
		Email:     patient.Email,
		BirthDate: utils.FormatDate(patient.BirthDate),
		Mrn:       patient.Mrn,
		Tags:      patient.Tags,
	}
	if age, ok := utils.AgeFromBirthDate(patient.BirthDate, now); ok {
		summary.Age = &age
	}
	if clinic != nil {
		summary.Tags = clinic.TagNames(patient.Tags)
	}
	return summary
}

func ToPrescriptionSummary(prescription *tidepool_dto.Prescription) responses.PrescriptionSummary {
	summary := responses.PrescriptionSummary{
		ID:           prescription.ID,
		ClinicID:     prescription.ClinicID,
		State:        prescription.State,
		AccessCode:   prescription.AccessCode,
		CreatedDate:  utils.FormatDate(prescription.CreatedTime),
		ModifiedDate: utils.FormatDate(prescription.ModifiedTime),
	}
	if revision := prescription.LatestRevision; revision != nil {
		summary.PatientName = JoinName(revision.Attributes.FirstName, revision.Attributes.LastName)
		summary.Email = revision.Attributes.Email
	}
	return summary
}

func JoinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

func ClinicianLink(clinicID, userID string) string {
	return fmt.Sprintf(constvars.AppPathClinicClinician, clinicID, userID)
}

func PatientLink(clinicID, userID string) string {
	return fmt.Sprintf(constvars.AppPathClinicPatient, clinicID, userID)
}
