package usecase

import (
	"context"
	"errors"
	"fmt"

	"healthcare-admin-portal/internal/domain/entity"
	"healthcare-admin-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrFetchDoctorsFailed     = errors.New("failed to fetch doctors")
	ErrDoctorDirectoryMissing = errors.New("doctor directory state unavailable")
)

// DoctorDirectoryUsecase fetches the doctor collection once per page visit
// and filters it locally.
type DoctorDirectoryUsecase interface {
	Open(ctx context.Context) (*entity.DoctorDirectoryState, error)
	Filter(ctx context.Context, query string) (*entity.DoctorDirectoryState, error)
}

type doctorDirectoryUsecase struct {
	log        *logrus.Logger
	store      *PageStore
	doctorRepo repository.DoctorRepository
}

func NewDoctorDirectoryUsecase(log *logrus.Logger, store *PageStore, doctorRepo repository.DoctorRepository) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:        log,
		store:      store,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorDirectoryUsecase) Open(ctx context.Context) (*entity.DoctorDirectoryState, error) {
	u.store.reset(ctx, entity.PageDoctors)

	key, gen := u.store.begin(ctx, entity.PageDoctors, entity.SlotList)
	state := &entity.DoctorDirectoryState{Phase: entity.PhaseLoading}

	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch doctors: %+v", err)
		state.Phase = entity.PhaseErrored
		state.Error = MsgFetchDoctorsFailed
		return commitOrLatest(ctx, u.store, key, gen, state), fmt.Errorf("%w: %w", ErrFetchDoctorsFailed, err)
	}

	state.Phase = entity.PhaseLoaded
	state.Doctors = doctors
	return commitOrLatest(ctx, u.store, key, gen, state), nil
}

// Filter narrows the stored collection to doctors whose name or
// specialization contains query. It never calls the gateway unless the page
// state has expired, in which case the directory is loaded once first. When
// the store itself fails, the filter shows the fetch error instead.
func (u *doctorDirectoryUsecase) Filter(ctx context.Context, query string) (*entity.DoctorDirectoryState, error) {
	var state entity.DoctorDirectoryState
	found, err := u.store.lookup(ctx, entity.PageDoctors, entity.SlotList, &state)
	if err != nil {
		failed := &entity.DoctorDirectoryState{Phase: entity.PhaseErrored, Error: MsgFetchDoctorsFailed}
		return failed, fmt.Errorf("%w: %w", ErrDoctorDirectoryMissing, err)
	}
	if !found {
		loaded, err := u.Open(ctx)
		if err != nil {
			return loaded, err
		}
		state = *loaded
	}

	state.Doctors = entity.FilterDoctors(state.Doctors, query)
	return &state, nil
}
