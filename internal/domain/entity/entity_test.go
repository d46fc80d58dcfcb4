package entity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpaqueIDUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want OpaqueID
	}{
		{"string", `"abc-1"`, "abc-1"},
		{"integer", `42`, "42"},
		{"large integer keeps literal", `9007199254740993`, "9007199254740993"},
		{"null", `null`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id OpaqueID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.want, id)
		})
	}

	t.Run("rejects other shapes", func(t *testing.T) {
		var id OpaqueID
		assert.Error(t, json.Unmarshal([]byte(`true`), &id))
		assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &id))
	})
}

func TestStatusCategoryIsTotal(t *testing.T) {
	assert.Equal(t, StatusCategoryInfo, AppointmentStatusScheduled.Category())
	assert.Equal(t, StatusCategorySuccess, AppointmentStatusCompleted.Category())
	assert.Equal(t, StatusCategoryFailure, AppointmentStatusCancelled.Category())

	for _, s := range []string{"", "scheduled", "Pending", "CANCELLED", "🙂"} {
		assert.Equal(t, StatusCategoryNeutral, AppointmentStatus(s).Category(), s)
		assert.False(t, AppointmentStatus(s).IsValid(), s)
	}
}

func TestFilterDoctors(t *testing.T) {
	cardio := "Cardiology"
	neuro := "Neurology"
	doctors := []Doctor{
		{ID: "1", Name: "Dr. Anita Rao", Specialization: &cardio},
		{ID: "2", Name: "Dr. Ben Lee", Specialization: &neuro},
		{ID: "3", Name: "Dr. Carla Neuman"},
	}

	queries := []string{"", "dr", "RAO", "neu", "logy", "zzz", " "}
	for _, q := range queries {
		t.Run("query "+q, func(t *testing.T) {
			got := FilterDoctors(doctors, q)

			var want []Doctor
			for _, d := range doctors {
				spec := ""
				if d.Specialization != nil {
					spec = *d.Specialization
				}
				lq := strings.ToLower(q)
				if strings.Contains(strings.ToLower(d.Name), lq) || strings.Contains(strings.ToLower(spec), lq) {
					want = append(want, d)
				}
			}
			assert.ElementsMatch(t, want, got)
			assert.Equal(t, got, FilterDoctors(got, q), "filtering is idempotent")
		})
	}

	assert.Len(t, FilterDoctors(doctors, "neu"), 2)
}

func TestBillingViewIsExclusive(t *testing.T) {
	tests := []struct {
		state BillingState
		want  BillingView
	}{
		{BillingState{Phase: PhaseIdle}, BillingViewNone},
		{BillingState{Phase: PhaseLoading}, BillingViewLoading},
		{BillingState{Phase: PhaseLoaded, Invoices: []Invoice{{ID: "1"}}}, BillingViewResults},
		{BillingState{Phase: PhaseLoaded, Invoices: []Invoice{}}, BillingViewEmpty},
		{BillingState{Phase: PhaseErrored, Error: "x", Invoices: []Invoice{{ID: "1"}}}, BillingViewError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.View())
	}
}

func TestPageSlots(t *testing.T) {
	assert.Equal(t, []Slot{SlotList, SlotForm}, PageAppointments.Slots())
	assert.Equal(t, []Slot{SlotForm}, PageRegister.Slots())
	assert.Equal(t, []Slot{SlotList}, PageBilling.Slots())
	assert.Equal(t, []Slot{SlotList}, PageDoctors.Slots())
}

func TestRegistrationDraftIsDoctor(t *testing.T) {
	assert.True(t, RegistrationDraft{Role: "DOCTOR"}.IsDoctor())
	assert.False(t, RegistrationDraft{Role: "PATIENT"}.IsDoctor())
	assert.False(t, RegistrationDraft{Role: "doctor"}.IsDoctor())
}
