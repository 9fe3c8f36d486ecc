package reports

import (
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/dto/responses"
	"orca-service/internal/pkg/mapper"
	"orca-service/internal/pkg/tidepool_dto"
	"sort"
	"strings"
	"time"
)

// MergeInput is everything the analysis needs to know about one clinic.
type MergeInput struct {
	Clinic     tidepool_dto.Clinic
	Patients   []tidepool_dto.Patient
	Clinicians []tidepool_dto.Clinician
}

// AnalyzeMerge predicts the outcome of merging source into target. Patients
// with the same account in both clinics are duplicates; patients matching on
// MRN, email or name plus birth date are likely duplicates. Clinicians are
// shared when id or email match and tags are matched by name ignoring case.
func AnalyzeMerge(source, target *MergeInput, now time.Time) *responses.ClinicMergeReport {
	report := &responses.ClinicMergeReport{
		GeneratedAt:       now.UTC().Format(time.RFC3339),
		Source:            mapper.ToClinicSummary(&source.Clinic),
		Target:            mapper.ToClinicSummary(&target.Clinic),
		DuplicateAccounts: []responses.MergePatientPair{},
		LikelyDuplicates:  []responses.MergePatientPair{},
		SharedClinicians:  []responses.MergeClinicianPair{},
		NewTags:           []string{},
		SharedTags:        []string{},
	}

	index := newPatientIndex(target.Patients)
	for i := range source.Patients {
		sourcePatient := &source.Patients[i]
		if j, ok := index.byID[sourcePatient.ID]; ok {
			report.DuplicateAccounts = append(report.DuplicateAccounts, responses.MergePatientPair{
				Source:  mapper.ToPatientSummary(sourcePatient, &source.Clinic, now),
				Target:  mapper.ToPatientSummary(&target.Patients[j], &target.Clinic, now),
				Reasons: []string{},
			})
			continue
		}
		for _, j := range index.candidates(sourcePatient) {
			targetPatient := &target.Patients[j]
			if targetPatient.ID == sourcePatient.ID {
				continue
			}
			report.LikelyDuplicates = append(report.LikelyDuplicates, responses.MergePatientPair{
				Source:  mapper.ToPatientSummary(sourcePatient, &source.Clinic, now),
				Target:  mapper.ToPatientSummary(targetPatient, &target.Clinic, now),
				Reasons: matchReasons(sourcePatient, targetPatient),
			})
		}
	}

	cliniciansByID := make(map[string]int, len(target.Clinicians))
	cliniciansByEmail := make(map[string]int, len(target.Clinicians))
	for j, clinician := range target.Clinicians {
		if clinician.ID != "" {
			cliniciansByID[clinician.ID] = j
		}
		if email := normalize(clinician.Email); email != "" {
			cliniciansByEmail[email] = j
		}
	}
	for i := range source.Clinicians {
		sourceClinician := &source.Clinicians[i]
		j, ok := cliniciansByID[sourceClinician.ID]
		if !ok {
			j, ok = cliniciansByEmail[normalize(sourceClinician.Email)]
		}
		if !ok {
			continue
		}
		report.SharedClinicians = append(report.SharedClinicians, responses.MergeClinicianPair{
			Source: mapper.ToClinicianSummary(sourceClinician),
			Target: mapper.ToClinicianSummary(&target.Clinicians[j]),
		})
	}

	targetTags := make(map[string]bool, len(target.Clinic.PatientTags))
	for _, tag := range target.Clinic.PatientTags {
		targetTags[normalize(tag.Name)] = true
	}
	seenTags := make(map[string]bool, len(source.Clinic.PatientTags))
	for _, tag := range source.Clinic.PatientTags {
		key := normalize(tag.Name)
		if key == "" || seenTags[key] {
			continue
		}
		seenTags[key] = true
		if targetTags[key] {
			report.SharedTags = append(report.SharedTags, tag.Name)
			continue
		}
		report.NewTags = append(report.NewTags, tag.Name)
	}

	report.Summary = responses.MergeSummary{
		SourcePatients:      len(source.Patients),
		TargetPatients:      len(target.Patients),
		DuplicateAccounts:   len(report.DuplicateAccounts),
		LikelyDuplicates:    len(report.LikelyDuplicates),
		ResultingPatients:   len(source.Patients) + len(target.Patients) - len(report.DuplicateAccounts),
		SourceClinicians:    len(source.Clinicians),
		TargetClinicians:    len(target.Clinicians),
		SharedClinicians:    len(report.SharedClinicians),
		ResultingClinicians: len(source.Clinicians) + len(target.Clinicians) - len(report.SharedClinicians),
		SourceTags:          len(source.Clinic.PatientTags),
		TargetTags:          len(target.Clinic.PatientTags),
		NewTags:             len(report.NewTags),
		ResultingTags:       len(target.Clinic.PatientTags) + len(report.NewTags),
	}
	return report
}

type patientIndex struct {
	byID        map[string]int
	byMrn       map[string][]int
	byEmail     map[string][]int
	byNameBirth map[string][]int
}

func newPatientIndex(patients []tidepool_dto.Patient) *patientIndex {
	index := &patientIndex{
		byID:        make(map[string]int, len(patients)),
		byMrn:       make(map[string][]int),
		byEmail:     make(map[string][]int),
		byNameBirth: make(map[string][]int),
	}
	for i := range patients {
		patient := &patients[i]
		index.byID[patient.ID] = i
		if key := normalize(patient.Mrn); key != "" {
			index.byMrn[key] = append(index.byMrn[key], i)
		}
		if key := normalize(patient.Email); key != "" {
			index.byEmail[key] = append(index.byEmail[key], i)
		}
		if key := nameBirthKey(patient); key != "" {
			index.byNameBirth[key] = append(index.byNameBirth[key], i)
		}
	}
	return index
}

// candidates returns target positions matching patient on any key, in target
// order and without repeats.
func (x *patientIndex) candidates(patient *tidepool_dto.Patient) []int {
	seen := make(map[int]bool)
	var result []int
	add := func(positions []int) {
		for _, position := range positions {
			if !seen[position] {
				seen[position] = true
				result = append(result, position)
			}
		}
	}
	if key := normalize(patient.Mrn); key != "" {
		add(x.byMrn[key])
	}
	if key := normalize(patient.Email); key != "" {
		add(x.byEmail[key])
	}
	if key := nameBirthKey(patient); key != "" {
		add(x.byNameBirth[key])
	}
	sort.Ints(result)
	return result
}

func matchReasons(source, target *tidepool_dto.Patient) []string {
	var reasons []string
	if mrn := normalize(source.Mrn); mrn != "" && mrn == normalize(target.Mrn) {
		reasons = append(reasons, constvars.ReportMergeReasonMrn)
	}
	if email := normalize(source.Email); email != "" && email == normalize(target.Email) {
		reasons = append(reasons, constvars.ReportMergeReasonEmail)
	}
	if key := nameBirthKey(source); key != "" && key == nameBirthKey(target) {
		reasons = append(reasons, constvars.ReportMergeReasonNameBirth)
	}
	return reasons
}

func nameBirthKey(patient *tidepool_dto.Patient) string {
	name := strings.Join(strings.Fields(normalize(patient.FullName)), " ")
	birthDate := strings.TrimSpace(patient.BirthDate)
	if name == "" || birthDate == "" {
		return ""
	}
	return name + "|" + birthDate
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
