package entity

// User is the account record created by registration.
type User struct {
	ID    OpaqueID `json:"id,omitempty"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  Role     `json:"role"`
}

// RegistrationDraft holds the registration form as the operator typed it.
type RegistrationDraft struct {
	Name           string
	Email          string
	Role           string
	Specialization string
}

// IsDoctor reports whether the draft asks for a doctor profile as well.
func (d RegistrationDraft) IsDoctor() bool {
	return Role(d.Role) == RoleDoctor
}
