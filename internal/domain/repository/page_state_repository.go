package repository

import (
	"context"

	"healthcare-admin-portal/internal/domain/entity"
)

// PageStateRepository stores per-session page state with a generation guard.
//
// Begin starts a new generation for a slot and returns it. Commit stores the
// state only while gen is still the slot's latest generation and reports
// whether it did. Reset invalidates every slot of a page.
type PageStateRepository interface {
	Begin(ctx context.Context, key entity.SlotKey) (int64, error)
	Commit(ctx context.Context, key entity.SlotKey, gen int64, state any) (bool, error)
	Load(ctx context.Context, key entity.SlotKey, state any) (bool, error)
	Reset(ctx context.Context, sessionID string, page entity.Page) error
}
