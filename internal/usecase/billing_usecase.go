package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"healthcare-admin-portal/internal/domain/entity"
	"healthcare-admin-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientIDRequired   = errors.New("patient id is required")
	ErrFetchInvoicesFailed = errors.New("failed to fetch invoices")
)

type BillingUsecase interface {
	Open(ctx context.Context) *entity.BillingState
	Lookup(ctx context.Context, patientID string) (*entity.BillingState, error)
}

type billingUsecase struct {
	log         *logrus.Logger
	store       *PageStore
	invoiceRepo repository.InvoiceRepository
}

func NewBillingUsecase(log *logrus.Logger, store *PageStore, invoiceRepo repository.InvoiceRepository) BillingUsecase {
	return &billingUsecase{
		log:         log,
		store:       store,
		invoiceRepo: invoiceRepo,
	}
}

func (u *billingUsecase) Open(ctx context.Context) *entity.BillingState {
	u.store.reset(ctx, entity.PageBilling)
	return &entity.BillingState{Phase: entity.PhaseIdle}
}

// Lookup fetches the invoices of a patient. A blank id is rejected without a
// gateway call; it still takes a generation so an older lookup cannot
// overwrite the rejection.
func (u *billingUsecase) Lookup(ctx context.Context, patientID string) (*entity.BillingState, error) {
	key, gen := u.store.begin(ctx, entity.PageBilling, entity.SlotList)

	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		state := &entity.BillingState{Phase: entity.PhaseErrored, Error: MsgPatientIDRequired}
		return commitOrLatest(ctx, u.store, key, gen, state), ErrPatientIDRequired
	}

	state := &entity.BillingState{Phase: entity.PhaseLoading, PatientID: patientID}
	invoices, err := u.invoiceRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to fetch invoices for patient %s: %+v", patientID, err)
		state.Phase = entity.PhaseErrored
		state.Error = failureMessage(err, MsgFetchInvoicesFailed)
		return commitOrLatest(ctx, u.store, key, gen, state), fmt.Errorf("%w: %w", ErrFetchInvoicesFailed, err)
	}

	state.Phase = entity.PhaseLoaded
	state.Invoices = invoices
	return commitOrLatest(ctx, u.store, key, gen, state), nil
}
