package usecase

import (
	"context"

	"healthcare-admin-portal/internal/delivery/http/middleware"
	"healthcare-admin-portal/internal/domain/entity"
	"healthcare-admin-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// StaleRecorder counts results discarded by the generation guard.
type StaleRecorder interface {
	IncStaleResult(page, slot string)
}

// PageStore wraps the page-state repository for usecases. Store failures are
// logged and otherwise ignored: the request still renders from its own state.
type PageStore struct {
	repo    repository.PageStateRepository
	log     *logrus.Logger
	metrics StaleRecorder
}

func NewPageStore(repo repository.PageStateRepository, log *logrus.Logger, metrics StaleRecorder) *PageStore {
	return &PageStore{repo: repo, log: log, metrics: metrics}
}

// slotKey returns the key for the request's session. ok is false when the
// request carries no session, in which case nothing is stored.
func slotKey(ctx context.Context, page entity.Page, slot entity.Slot) (entity.SlotKey, bool) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	return entity.SlotKey{SessionID: sessionID, Page: page, Slot: slot}, ok
}

func (s *PageStore) reset(ctx context.Context, page entity.Page) {
	sessionID, ok := middleware.GetSessionIDFromContext(ctx)
	if !ok {
		return
	}
	if err := s.repo.Reset(ctx, sessionID, page); err != nil {
		s.log.Warnf("Failed to reset %s page state: %+v", page, err)
	}
}

// begin returns 0 when no generation could be taken.
func (s *PageStore) begin(ctx context.Context, page entity.Page, slot entity.Slot) (entity.SlotKey, int64) {
	key, ok := slotKey(ctx, page, slot)
	if !ok {
		return key, 0
	}
	gen, err := s.repo.Begin(ctx, key)
	if err != nil {
		s.log.Warnf("Failed to begin %s/%s generation: %+v", page, slot, err)
		return key, 0
	}
	return key, gen
}

// load reports a store failure as not found.
func (s *PageStore) load(ctx context.Context, page entity.Page, slot entity.Slot, state any) bool {
	found, _ := s.lookup(ctx, page, slot, state)
	return found
}

// lookup is load for callers that must tell a missing state from a store
// failure.
func (s *PageStore) lookup(ctx context.Context, page entity.Page, slot entity.Slot, state any) (bool, error) {
	key, ok := slotKey(ctx, page, slot)
	if !ok {
		return false, nil
	}
	found, err := s.repo.Load(ctx, key, state)
	if err != nil {
		s.log.Warnf("Failed to load %s/%s state: %+v", page, slot, err)
		return false, err
	}
	return found, nil
}

// commitOrLatest stores state under gen. If a newer request has superseded
// gen, state is discarded and the newer stored state is returned instead.
func commitOrLatest[T any](ctx context.Context, s *PageStore, key entity.SlotKey, gen int64, state *T) *T {
	if gen == 0 {
		return state
	}

	written, err := s.repo.Commit(ctx, key, gen, state)
	if err != nil {
		s.log.Warnf("Failed to commit %s/%s state: %+v", key.Page, key.Slot, err)
		return state
	}
	if written {
		return state
	}

	if s.metrics != nil {
		s.metrics.IncStaleResult(string(key.Page), string(key.Slot))
	}
	s.log.WithFields(logrus.Fields{
		"page":       key.Page,
		"slot":       key.Slot,
		"generation": gen,
	}).Debug("discarded superseded result")

	var latest T
	found, err := s.repo.Load(ctx, key, &latest)
	if err != nil || !found {
		return state
	}
	return &latest
}
