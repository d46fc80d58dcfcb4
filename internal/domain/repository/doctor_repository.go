package repository

import (
	"context"

	"healthcare-admin-portal/internal/domain/entity"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	Create(ctx context.Context, doctor *entity.Doctor) (*entity.Doctor, error)
}
