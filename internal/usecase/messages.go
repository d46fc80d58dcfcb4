package usecase

import "healthcare-admin-portal/internal/infrastructure/gateway"

// User-facing messages. Gateway status codes and error details are never
// shown to users.
const (
	MsgConnectionError           = "Connection error. Please check your network."
	MsgUserRegistrationFailed    = "User registration failed"
	MsgDoctorProfileIncomplete   = "The user account was created, but the doctor profile could not be saved. You can retry the doctor profile below."
	MsgFetchAppointmentsFailed   = "Failed to fetch appointments. Please try again."
	MsgScheduleAppointmentFailed = "Failed to schedule appointment. Please try again."
	MsgAppointmentScheduled      = "Appointment scheduled successfully!"
	MsgFetchInvoicesFailed       = "Failed to fetch invoices. Please try again."
	MsgPatientIDRequired         = "Please enter a patient ID"
	MsgFetchDoctorsFailed        = "Failed to fetch doctors"
)

// failureMessage maps a gateway failure to its user message: connectivity
// problems share one message, everything else gets the operation's message.
func failureMessage(err error, applicationMessage string) string {
	if gateway.IsNetwork(err) {
		return MsgConnectionError
	}
	return applicationMessage
}
