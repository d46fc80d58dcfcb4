package dto

import "strings"

// AppointmentForm is the posted booking form. DoctorID and PatientID are
// kept exactly as typed.
type AppointmentForm struct {
	PatientID       string `schema:"patientId" label:"Patient" validate:"required"`
	DoctorID        string `schema:"doctorId" label:"Doctor" validate:"required"`
	AppointmentDate string `schema:"appointmentDate" label:"Appointment date" validate:"required,datetime_local"`
	Status          string `schema:"status" label:"Status" validate:"omitempty,oneof=Scheduled Completed Cancelled"`
}

func (f *AppointmentForm) Normalize() {
	f.PatientID = strings.TrimSpace(f.PatientID)
	f.DoctorID = strings.TrimSpace(f.DoctorID)
	f.AppointmentDate = strings.TrimSpace(f.AppointmentDate)
	f.Status = strings.TrimSpace(f.Status)
	if f.Status == "" {
		f.Status = "Scheduled"
	}
}

type AppointmentRow struct {
	ID        string
	PatientID string
	DoctorID  string
	Date      string
	Status    string
	Category  string
}

type AppointmentsPage struct {
	DoctorID     string
	Appointments []AppointmentRow
	Loading      bool
	ListError    string

	Form        AppointmentForm
	Statuses    []Option
	FieldErrors map[string]string
	Submitting  bool
	FormError   string
	Success     string
}
