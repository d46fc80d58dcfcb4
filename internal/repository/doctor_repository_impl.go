package repository

import (
	"context"
	"net/http"

	"healthcare-admin-portal/internal/domain/entity"
	domainRepo "healthcare-admin-portal/internal/domain/repository"
	"healthcare-admin-portal/internal/infrastructure/gateway"
)

type doctorRepository struct {
	client *gateway.Client
}

func NewDoctorRepository(client *gateway.Client) domainRepo.DoctorRepository {
	return &doctorRepository{client: client}
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	if err := r.client.Do(ctx, gateway.OpListDoctors, http.MethodGet, "/api/doctors", nil, &doctors); err != nil {
		return nil, err
	}
	if doctors == nil {
		doctors = []entity.Doctor{}
	}
	return doctors, nil
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) (*entity.Doctor, error) {
	created := *doctor
	if err := r.client.Do(ctx, gateway.OpCreateDoctor, http.MethodPost, "/api/doctors", doctor, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
