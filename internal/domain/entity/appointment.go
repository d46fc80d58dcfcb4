package entity

// AppointmentStatus is the status of an appointment. The gateway may return
// values outside the known set; they are displayed as-is.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// StatusCategory is the presentational group of a status.
type StatusCategory string

const (
	StatusCategoryInfo    StatusCategory = "info"
	StatusCategorySuccess StatusCategory = "success"
	StatusCategoryFailure StatusCategory = "failure"
	StatusCategoryNeutral StatusCategory = "neutral"
)

// Appointment as exchanged with the gateway. The id is omitted on create.
type Appointment struct {
	ID              OpaqueID          `json:"id,omitempty"`
	PatientID       OpaqueID          `json:"patientId"`
	DoctorID        OpaqueID          `json:"doctorId"`
	AppointmentDate string            `json:"appointmentDate"`
	Status          AppointmentStatus `json:"status"`
}

// AppointmentDraft holds the booking form as the operator typed it.
type AppointmentDraft struct {
	PatientID       string
	DoctorID        string
	AppointmentDate string
	Status          string
}

// NewAppointmentDraft returns an empty draft with the default status.
func NewAppointmentDraft() AppointmentDraft {
	return AppointmentDraft{Status: string(AppointmentStatusScheduled)}
}

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Category maps any status, known or not, to a display category.
func (s AppointmentStatus) Category() StatusCategory {
	switch s {
	case AppointmentStatusScheduled:
		return StatusCategoryInfo
	case AppointmentStatusCompleted:
		return StatusCategorySuccess
	case AppointmentStatusCancelled:
		return StatusCategoryFailure
	default:
		return StatusCategoryNeutral
	}
}

// AppointmentStatuses lists the selectable statuses in display order.
func AppointmentStatuses() []AppointmentStatus {
	return []AppointmentStatus{AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled}
}
