package repository

import (
	"context"

	"healthcare-admin-portal/internal/domain/entity"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]entity.Appointment, error)
	Create(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error)
}
