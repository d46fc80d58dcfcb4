package repository

import (
	"context"
	"net/http"

	"healthcare-admin-portal/internal/domain/entity"
	domainRepo "healthcare-admin-portal/internal/domain/repository"
	"healthcare-admin-portal/internal/infrastructure/gateway"
)

type appointmentRepository struct {
	client *gateway.Client
}

func NewAppointmentRepository(client *gateway.Client) domainRepo.AppointmentRepository {
	return &appointmentRepository{client: client}
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	return r.list(ctx, gateway.OpListAppointments, "/api/appointments")
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]entity.Appointment, error) {
	return r.list(ctx, gateway.OpListAppointmentsByDoctor, "/api/appointments/doctor/"+gateway.PathSegment(doctorID))
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error) {
	created := *appointment
	if err := r.client.Do(ctx, gateway.OpCreateAppointment, http.MethodPost, "/api/appointments", appointment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *appointmentRepository) list(ctx context.Context, op gateway.Operation, path string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := r.client.Do(ctx, op, http.MethodGet, path, nil, &appointments); err != nil {
		return nil, err
	}
	if appointments == nil {
		appointments = []entity.Appointment{}
	}
	return appointments, nil
}
