package usecase

import (
	"context"
	"errors"
	"fmt"

	"healthcare-admin-portal/internal/domain/entity"
	"healthcare-admin-portal/internal/domain/repository"
	"healthcare-admin-portal/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrRegistrationInvalid     = errors.New("registration form is invalid")
	ErrUserRegistrationFailed  = errors.New("user registration failed")
	ErrDoctorProfileIncomplete = errors.New("user created but doctor profile incomplete")
	ErrNoPendingDoctorProfile  = errors.New("no pending doctor profile")
)

// RegistrationUsecase registers users and, for doctors, their directory
// profile. The two gateway calls are sequential and not transactional: when
// the second fails the pending profile is kept so the operator can retry it.
type RegistrationUsecase interface {
	Open(ctx context.Context) *entity.RegistrationState
	Reject(ctx context.Context, draft entity.RegistrationDraft, fieldErrors map[string]string) (*entity.RegistrationState, error)
	Register(ctx context.Context, draft entity.RegistrationDraft) (*entity.RegistrationState, error)
	CompleteDoctorProfile(ctx context.Context) (*entity.RegistrationState, error)
}

type registrationUsecase struct {
	log          *logrus.Logger
	store        *PageStore
	userRepo     repository.UserRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewRegistrationUsecase(
	log *logrus.Logger,
	store *PageStore,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) RegistrationUsecase {
	return &registrationUsecase{
		log:          log,
		store:        store,
		userRepo:     userRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

// Open starts a blank registration, dropping any previous state.
func (u *registrationUsecase) Open(ctx context.Context) *entity.RegistrationState {
	u.store.reset(ctx, entity.PageRegister)
	return entity.NewRegistrationState()
}

// Reject re-renders the form with field errors. No gateway call is made.
func (u *registrationUsecase) Reject(ctx context.Context, draft entity.RegistrationDraft, fieldErrors map[string]string) (*entity.RegistrationState, error) {
	state := &entity.RegistrationState{
		Phase:       entity.PhaseIdle,
		Values:      draft,
		FieldErrors: fieldErrors,
	}

	// A rejected resubmission must not hide a profile that is still pending.
	var previous entity.RegistrationState
	if u.store.load(ctx, entity.PageRegister, entity.SlotForm, &previous) {
		state.PendingDoctor = previous.PendingDoctor
	}
	return state, ErrRegistrationInvalid
}

func (u *registrationUsecase) Register(ctx context.Context, draft entity.RegistrationDraft) (*entity.RegistrationState, error) {
	key, gen := u.store.begin(ctx, entity.PageRegister, entity.SlotForm)
	state := &entity.RegistrationState{Phase: entity.PhaseSubmitting, Values: draft}

	user := &entity.User{Name: draft.Name, Email: draft.Email, Role: entity.Role(draft.Role)}
	created, err := u.userRepo.Create(ctx, user)
	if err != nil {
		u.log.Warnf("Failed to create user %s: %+v", draft.Email, err)
		state.Phase = entity.PhaseErrored
		state.Error = failureMessage(err, MsgUserRegistrationFailed)
		return commitOrLatest(ctx, u.store, key, gen, state), fmt.Errorf("%w: %w", ErrUserRegistrationFailed, err)
	}
	u.auditService.LogCreate(ctx, entity.AuditActionUserCreate, "user", created.ID.String(), created)

	if draft.IsDoctor() {
		profile := entity.NewDoctorProfile(draft.Name, draft.Specialization)
		if err := u.createDoctor(ctx, &profile); err != nil {
			state.Phase = entity.PhaseErrored
			state.Error = failureMessage(err, MsgDoctorProfileIncomplete)
			state.PendingDoctor = &profile
			return commitOrLatest(ctx, u.store, key, gen, state), fmt.Errorf("%w: %w", ErrDoctorProfileIncomplete, err)
		}
	}

	state.Phase = entity.PhaseSucceeded
	return commitOrLatest(ctx, u.store, key, gen, state), nil
}

// CompleteDoctorProfile re-issues only the create-doctor step of a partially
// failed registration.
func (u *registrationUsecase) CompleteDoctorProfile(ctx context.Context) (*entity.RegistrationState, error) {
	var previous entity.RegistrationState
	if !u.store.load(ctx, entity.PageRegister, entity.SlotForm, &previous) || previous.PendingDoctor == nil {
		return entity.NewRegistrationState(), ErrNoPendingDoctorProfile
	}

	key, gen := u.store.begin(ctx, entity.PageRegister, entity.SlotForm)
	state := &entity.RegistrationState{
		Phase:         entity.PhaseSubmitting,
		Values:        previous.Values,
		PendingDoctor: previous.PendingDoctor,
	}

	if err := u.createDoctor(ctx, state.PendingDoctor); err != nil {
		state.Phase = entity.PhaseErrored
		state.Error = failureMessage(err, MsgDoctorProfileIncomplete)
		return commitOrLatest(ctx, u.store, key, gen, state), fmt.Errorf("%w: %w", ErrDoctorProfileIncomplete, err)
	}

	state.Phase = entity.PhaseSucceeded
	state.PendingDoctor = nil
	return commitOrLatest(ctx, u.store, key, gen, state), nil
}

func (u *registrationUsecase) createDoctor(ctx context.Context, profile *entity.Doctor) error {
	doctor, err := u.doctorRepo.Create(ctx, profile)
	if err != nil {
		u.log.Warnf("Failed to create doctor profile for %s: %+v", profile.Name, err)
		return err
	}
	u.auditService.LogCreate(ctx, entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), doctor)
	return nil
}
