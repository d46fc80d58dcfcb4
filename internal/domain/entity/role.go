package entity

// Role is fixed at registration and never changed by the portal.
type Role string

const (
	RoleDoctor  Role = "DOCTOR"
	RolePatient Role = "PATIENT"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleDoctor, RolePatient:
		return true
	}
	return false
}

// Label is the human name used in the role picker.
func (r Role) Label() string {
	switch r {
	case RoleDoctor:
		return "Doctor"
	case RolePatient:
		return "Patient"
	}
	return string(r)
}

// Roles lists the selectable roles in display order.
func Roles() []Role {
	return []Role{RoleDoctor, RolePatient}
}
