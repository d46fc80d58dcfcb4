package repository

import (
	"context"
	"net/http"

	"healthcare-admin-portal/internal/domain/entity"
	domainRepo "healthcare-admin-portal/internal/domain/repository"
	"healthcare-admin-portal/internal/infrastructure/gateway"
)

type userRepository struct {
	client *gateway.Client
}

func NewUserRepository(client *gateway.Client) domainRepo.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	created := *user
	if err := r.client.Do(ctx, gateway.OpCreateUser, http.MethodPost, "/api/users", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
