package converter

import (
	"healthcare-admin-portal/internal/delivery/dto"
	"healthcare-admin-portal/internal/domain/entity"
	"healthcare-admin-portal/pkg/validator"
)

const appointmentDateLayout = "Jan 2, 2006, 3:04 PM"

// FormatAppointmentDate renders a gateway date-time for display. Values that
// do not parse are shown as received.
func FormatAppointmentDate(raw string) string {
	t, ok := validator.ParseDateTime(raw)
	if !ok {
		return raw
	}
	return t.Format(appointmentDateLayout)
}

func AppointmentToRow(appointment entity.Appointment) dto.AppointmentRow {
	return dto.AppointmentRow{
		ID:        appointment.ID.String(),
		PatientID: appointment.PatientID.String(),
		DoctorID:  appointment.DoctorID.String(),
		Date:      FormatAppointmentDate(appointment.AppointmentDate),
		Status:    string(appointment.Status),
		Category:  string(appointment.Status.Category()),
	}
}

func AppointmentsToRows(appointments []entity.Appointment) []dto.AppointmentRow {
	rows := make([]dto.AppointmentRow, len(appointments))
	for i, appointment := range appointments {
		rows[i] = AppointmentToRow(appointment)
	}
	return rows
}

// AppointmentDraftToEntity builds the create payload; the date is sent
// exactly as entered.
func AppointmentDraftToEntity(draft entity.AppointmentDraft) *entity.Appointment {
	status := entity.AppointmentStatus(draft.Status)
	if status == "" {
		status = entity.AppointmentStatusScheduled
	}
	return &entity.Appointment{
		PatientID:       entity.OpaqueID(draft.PatientID),
		DoctorID:        entity.OpaqueID(draft.DoctorID),
		AppointmentDate: draft.AppointmentDate,
		Status:          status,
	}
}

func AppointmentFormToDraft(form dto.AppointmentForm) entity.AppointmentDraft {
	return entity.AppointmentDraft{
		PatientID:       form.PatientID,
		DoctorID:        form.DoctorID,
		AppointmentDate: form.AppointmentDate,
		Status:          form.Status,
	}
}

func AppointmentsStateToPage(state *entity.AppointmentsPageState) *dto.AppointmentsPage {
	form := state.Form
	statuses := make([]dto.Option, 0, 3)
	for _, s := range entity.AppointmentStatuses() {
		statuses = append(statuses, dto.Option{
			Value:    string(s),
			Label:    string(s),
			Selected: string(s) == form.Values.Status,
		})
	}

	return &dto.AppointmentsPage{
		DoctorID:     state.List.DoctorID,
		Appointments: AppointmentsToRows(state.List.Appointments),
		Loading:      state.List.Phase == entity.PhaseLoading,
		ListError:    state.List.Error,
		Form: dto.AppointmentForm{
			PatientID:       form.Values.PatientID,
			DoctorID:        form.Values.DoctorID,
			AppointmentDate: form.Values.AppointmentDate,
			Status:          form.Values.Status,
		},
		Statuses:    statuses,
		FieldErrors: form.FieldErrors,
		Submitting:  form.Phase == entity.PhaseSubmitting,
		FormError:   form.Error,
		Success:     form.Success,
	}
}
