package dto

import "strings"

// RegistrationForm is the posted registration form.
type RegistrationForm struct {
	Name           string `schema:"name" label:"Name" validate:"required"`
	Email          string `schema:"email" label:"Email" validate:"required,email"`
	Role           string `schema:"role" label:"Role" validate:"required,oneof=DOCTOR PATIENT"`
	Specialization string `schema:"specialization" label:"Specialization" validate:"required_if=Role DOCTOR"`
}

// Normalize trims every field and drops the specialization of non-doctors.
func (f *RegistrationForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Role = strings.TrimSpace(f.Role)
	f.Specialization = strings.TrimSpace(f.Specialization)
	if f.Role != "DOCTOR" {
		f.Specialization = ""
	}
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type RegisterPage struct {
	Form        RegistrationForm
	Roles       []Option
	FieldErrors map[string]string
	Error       string
	Confirmed   bool

	// Set when the account exists but the doctor profile was not created.
	ProfileIncomplete     bool
	PendingName           string
	PendingSpecialization string
}
