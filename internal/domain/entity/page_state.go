package entity

// Page identifies one portal page. Each page owns its state; no page reads
// another page's state.
type Page string

const (
	PageRegister     Page = "register"
	PageDoctors      Page = "doctors"
	PageAppointments Page = "appointments"
	PageBilling      Page = "billing"
)

// Slot is an independently tracked part of a page state. Every slot has its
// own generation counter, so a list fetch and a form submission never
// supersede each other.
type Slot string

const (
	SlotList Slot = "list"
	SlotForm Slot = "form"
)

// Slots returns the slots a page uses.
func (p Page) Slots() []Slot {
	switch p {
	case PageAppointments:
		return []Slot{SlotList, SlotForm}
	case PageRegister:
		return []Slot{SlotForm}
	default:
		return []Slot{SlotList}
	}
}

// SlotKey addresses one slot of one page for one browser.
type SlotKey struct {
	SessionID string
	Page      Page
	Slot      Slot
}

// Phase is the state machine position of a slot.
//
//	list: idle -> loading -> loaded | errored
//	form: idle -> submitting -> succeeded | errored
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseLoading    Phase = "loading"
	PhaseLoaded     Phase = "loaded"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseErrored    Phase = "errored"
)

type RegistrationState struct {
	Phase       Phase             `json:"phase"`
	Values      RegistrationDraft `json:"values"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Error       string            `json:"error,omitempty"`
	// PendingDoctor is set when the user was created but the doctor
	// profile was not.
	PendingDoctor *Doctor `json:"pendingDoctor,omitempty"`
}

func NewRegistrationState() *RegistrationState {
	return &RegistrationState{Phase: PhaseIdle}
}

func (s *RegistrationState) Confirmed() bool {
	return s.Phase == PhaseSucceeded
}

func (s *RegistrationState) ProfileIncomplete() bool {
	return s.PendingDoctor != nil
}

type AppointmentListState struct {
	Phase Phase `json:"phase"`
	// DoctorID is the doctor the list is scoped to; empty means all doctors.
	DoctorID     string        `json:"doctorId,omitempty"`
	Appointments []Appointment `json:"appointments,omitempty"`
	Error        string        `json:"error,omitempty"`
}

type AppointmentFormState struct {
	Phase       Phase             `json:"phase"`
	Values      AppointmentDraft  `json:"values"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Error       string            `json:"error,omitempty"`
	Success     string            `json:"success,omitempty"`
}

func NewAppointmentFormState() *AppointmentFormState {
	return &AppointmentFormState{Phase: PhaseIdle, Values: NewAppointmentDraft()}
}

type AppointmentsPageState struct {
	List AppointmentListState
	Form AppointmentFormState
}

type DoctorDirectoryState struct {
	Phase   Phase    `json:"phase"`
	Doctors []Doctor `json:"doctors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func (s *DoctorDirectoryState) Loading() bool {
	return s.Phase == PhaseLoading
}

// BillingView is the single result view a billing page shows.
type BillingView string

const (
	BillingViewNone    BillingView = "none"
	BillingViewLoading BillingView = "loading"
	BillingViewResults BillingView = "results"
	BillingViewEmpty   BillingView = "empty"
	BillingViewError   BillingView = "error"
)

type BillingState struct {
	Phase     Phase     `json:"phase"`
	PatientID string    `json:"patientId,omitempty"`
	Invoices  []Invoice `json:"invoices,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// View derives exactly one result view from the state.
func (s *BillingState) View() BillingView {
	switch s.Phase {
	case PhaseLoading:
		return BillingViewLoading
	case PhaseErrored:
		return BillingViewError
	case PhaseLoaded:
		if len(s.Invoices) > 0 {
			return BillingViewResults
		}
		return BillingViewEmpty
	default:
		return BillingViewNone
	}
}
