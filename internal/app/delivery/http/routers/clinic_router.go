package routers

import (
	"orca-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// Clinicians, patients and prescriptions are reached through their clinic.
func attachClinicRoutes(
	router chi.Router,
	clinicController *controllers.ClinicController,
	clinicianController *controllers.ClinicianController,
	patientController *controllers.PatientController,
	prescriptionController *controllers.PrescriptionController,
) {
	router.Get("/", clinicController.SearchClinics)
	router.Get("/{clinic_id}", clinicController.FindClinic)

	router.Get("/{clinic_id}/clinicians", clinicianController.FindClinicClinicians)
	router.Get("/{clinic_id}/clinicians/{clinician_id}", clinicianController.FindClinician)
	router.Post("/{clinic_id}/clinicians/{clinician_id}", clinicianController.UpdateClinicianRoles)

	router.Get("/{clinic_id}/patients", patientController.FindClinicPatients)
	router.Get("/{clinic_id}/patients/{patient_id}", patientController.FindPatient)

	router.Get("/{clinic_id}/prescriptions", prescriptionController.FindClinicPrescriptions)
	router.Get("/{clinic_id}/prescriptions/{prescription_id}", prescriptionController.FindPrescription)
}
