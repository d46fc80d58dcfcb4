package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"healthcare-admin-portal/internal/delivery/http/middleware"
	"healthcare-admin-portal/internal/domain/entity"
	"healthcare-admin-portal/internal/infrastructure/gateway"
	"healthcare-admin-portal/internal/repository"
	"healthcare-admin-portal/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	errNetwork     = fmt.Errorf("gateway: test: %w: %w", gateway.ErrNetwork, errors.New("connection refused"))
	errApplication = &gateway.StatusError{Operation: "test", StatusCode: 500}
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func sessionCtx(sessionID string) context.Context {
	return middleware.WithSessionID(context.Background(), sessionID)
}

type staleCounter struct {
	stale int
}

func (s *staleCounter) IncStaleResult(string, string) { s.stale++ }

func newTestStore(t *testing.T) (*PageStore, *staleCounter) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	counter := &staleCounter{}
	repo := repository.NewPageStateRepository(client, 30*time.Minute)
	return NewPageStore(repo, quietLogger(), counter), counter
}

func newTestAudit() service.AuditService {
	return service.NewAuditService(quietLogger(), nil)
}

type fakeUserRepo struct {
	calls []entity.User
	err   error
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	f.calls = append(f.calls, *user)
	if f.err != nil {
		return nil, f.err
	}
	created := *user
	created.ID = entity.OpaqueID(fmt.Sprintf("u%d", len(f.calls)))
	return &created, nil
}

type fakeDoctorRepo struct {
	doctors   []entity.Doctor
	findErr   error
	findCalls int

	created    []entity.Doctor
	createErrs []error
}

func (f *fakeDoctorRepo) FindAll(context.Context) ([]entity.Doctor, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.doctors, nil
}

// Create fails with the queued errors in order, then succeeds.
func (f *fakeDoctorRepo) Create(_ context.Context, doctor *entity.Doctor) (*entity.Doctor, error) {
	f.created = append(f.created, *doctor)
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		return nil, err
	}
	created := *doctor
	created.ID = entity.OpaqueID(fmt.Sprintf("d%d", len(f.created)))
	return &created, nil
}

type fakeAppointmentRepo struct {
	byDoctor     []string
	byDoctorList []entity.Appointment
	findAllCalls int
	all          []entity.Appointment
	listErr      error

	created   []entity.Appointment
	createErr error
}

func (f *fakeAppointmentRepo) FindAll(context.Context) ([]entity.Appointment, error) {
	f.findAllCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.all, nil
}

func (f *fakeAppointmentRepo) FindByDoctorID(_ context.Context, doctorID string) ([]entity.Appointment, error) {
	f.byDoctor = append(f.byDoctor, doctorID)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byDoctorList, nil
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) (*entity.Appointment, error) {
	f.created = append(f.created, *appointment)
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *appointment
	created.ID = "a1"
	return &created, nil
}

type fakeInvoiceRepo struct {
	calls    []string
	invoices []entity.Invoice
	err      error
	onCall   func(patientID string)
}

func (f *fakeInvoiceRepo) FindByPatientID(_ context.Context, patientID string) ([]entity.Invoice, error) {
	f.calls = append(f.calls, patientID)
	if f.onCall != nil {
		f.onCall(patientID)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.invoices, nil
}

// failingPageStateRepo behaves like a store that is down.
type failingPageStateRepo struct {
	err error
}

func (f *failingPageStateRepo) Begin(context.Context, entity.SlotKey) (int64, error) {
	return 0, f.err
}

func (f *failingPageStateRepo) Commit(context.Context, entity.SlotKey, int64, any) (bool, error) {
	return false, f.err
}

func (f *failingPageStateRepo) Load(context.Context, entity.SlotKey, any) (bool, error) {
	return false, f.err
}

func (f *failingPageStateRepo) Reset(context.Context, string, entity.Page) error {
	return f.err
}
