package repository

import (
	"context"

	"healthcare-admin-portal/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
}
