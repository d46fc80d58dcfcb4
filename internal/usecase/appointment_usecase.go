package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"healthcare-admin-portal/internal/converter"
	"healthcare-admin-portal/internal/domain/entity"
	"healthcare-admin-portal/internal/domain/repository"
	"healthcare-admin-portal/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentInvalid        = errors.New("appointment form is invalid")
	ErrFetchAppointmentsFailed   = errors.New("failed to fetch appointments")
	ErrScheduleAppointmentFailed = errors.New("failed to schedule appointment")
)

// AppointmentUsecase drives the appointments page: a list slot and a booking
// form slot, each tracked on its own.
type AppointmentUsecase interface {
	Open(ctx context.Context, doctorID string) (*entity.AppointmentsPageState, error)
	Reject(ctx context.Context, draft entity.AppointmentDraft, fieldErrors map[string]string) (*entity.AppointmentsPageState, error)
	Book(ctx context.Context, draft entity.AppointmentDraft) (*entity.AppointmentsPageState, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	store           *PageStore
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	defaultDoctorID string
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	store *PageStore,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	defaultDoctorID string,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		store:           store,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		defaultDoctorID: defaultDoctorID,
	}
}

// Open resets the page and loads the appointments of doctorID, or of the
// default doctor when doctorID is blank.
func (u *appointmentUsecase) Open(ctx context.Context, doctorID string) (*entity.AppointmentsPageState, error) {
	u.store.reset(ctx, entity.PageAppointments)

	doctorID = strings.TrimSpace(doctorID)
	if doctorID == "" {
		doctorID = u.defaultDoctorID
	}

	key, gen := u.store.begin(ctx, entity.PageAppointments, entity.SlotList)
	list := &entity.AppointmentListState{Phase: entity.PhaseLoading, DoctorID: doctorID}

	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to fetch appointments for doctor %s: %+v", doctorID, err)
		list.Phase = entity.PhaseErrored
		list.Error = failureMessage(err, MsgFetchAppointmentsFailed)
	} else {
		list.Phase = entity.PhaseLoaded
		list.Appointments = appointments
	}
	list = commitOrLatest(ctx, u.store, key, gen, list)

	state := &entity.AppointmentsPageState{List: *list, Form: *entity.NewAppointmentFormState()}
	if err != nil {
		return state, fmt.Errorf("%w: %w", ErrFetchAppointmentsFailed, err)
	}
	return state, nil
}

// Reject re-renders the form with field errors next to the current list.
func (u *appointmentUsecase) Reject(ctx context.Context, draft entity.AppointmentDraft, fieldErrors map[string]string) (*entity.AppointmentsPageState, error) {
	return &entity.AppointmentsPageState{
		List: u.currentList(ctx),
		Form: entity.AppointmentFormState{
			Phase:       entity.PhaseIdle,
			Values:      draft,
			FieldErrors: fieldErrors,
		},
	}, ErrAppointmentInvalid
}

// Book creates the appointment. On success the full, unfiltered appointment
// collection replaces the list and the form is reset.
func (u *appointmentUsecase) Book(ctx context.Context, draft entity.AppointmentDraft) (*entity.AppointmentsPageState, error) {
	formKey, formGen := u.store.begin(ctx, entity.PageAppointments, entity.SlotForm)
	form := &entity.AppointmentFormState{Phase: entity.PhaseSubmitting, Values: draft}

	created, err := u.appointmentRepo.Create(ctx, converter.AppointmentDraftToEntity(draft))
	if err != nil {
		u.log.Warnf("Failed to schedule appointment for patient %s: %+v", draft.PatientID, err)
		form.Phase = entity.PhaseErrored
		form.Error = failureMessage(err, MsgScheduleAppointmentFailed)
		form = commitOrLatest(ctx, u.store, formKey, formGen, form)
		return &entity.AppointmentsPageState{List: u.currentList(ctx), Form: *form},
			fmt.Errorf("%w: %w", ErrScheduleAppointmentFailed, err)
	}
	u.auditService.LogCreate(ctx, entity.AuditActionAppointmentCreate, "appointment", created.ID.String(), created)

	form = &entity.AppointmentFormState{
		Phase:   entity.PhaseSucceeded,
		Values:  entity.NewAppointmentDraft(),
		Success: MsgAppointmentScheduled,
	}
	form = commitOrLatest(ctx, u.store, formKey, formGen, form)

	listKey, listGen := u.store.begin(ctx, entity.PageAppointments, entity.SlotList)
	list := &entity.AppointmentListState{Phase: entity.PhaseLoading}
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to refetch appointments after booking: %+v", err)
		list.Phase = entity.PhaseErrored
		list.Error = failureMessage(err, MsgFetchAppointmentsFailed)
	} else {
		list.Phase = entity.PhaseLoaded
		list.Appointments = appointments
	}
	list = commitOrLatest(ctx, u.store, listKey, listGen, list)

	return &entity.AppointmentsPageState{List: *list, Form: *form}, nil
}

func (u *appointmentUsecase) currentList(ctx context.Context) entity.AppointmentListState {
	var list entity.AppointmentListState
	if !u.store.load(ctx, entity.PageAppointments, entity.SlotList, &list) {
		return entity.AppointmentListState{Phase: entity.PhaseIdle}
	}
	return list
}
