package entity

import "strings"

// DefaultSpecialization is displayed for doctors without a specialization.
const DefaultSpecialization = "General Practice"

// Doctor is a directory entry as returned by the gateway.
type Doctor struct {
	ID             OpaqueID `json:"id,omitempty"`
	Name           string   `json:"name"`
	Specialization *string  `json:"specialization,omitempty"`
	Experience     *int     `json:"experience,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	Available      bool     `json:"available"`
}

// NewDoctorProfile builds the create-doctor payload for a registration.
func NewDoctorProfile(name, specialization string) Doctor {
	return Doctor{
		Name:           name,
		Specialization: &specialization,
		Available:      true,
	}
}

// DisplaySpecialization falls back to DefaultSpecialization.
func (d Doctor) DisplaySpecialization() string {
	if d.Specialization == nil || *d.Specialization == "" {
		return DefaultSpecialization
	}
	return *d.Specialization
}

// Matches reports whether query is a case-insensitive substring of the
// doctor's name or specialization. An empty query matches everyone.
func (d Doctor) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(d.Name), q) {
		return true
	}
	return d.Specialization != nil && strings.Contains(strings.ToLower(*d.Specialization), q)
}

// FilterDoctors returns the doctors matching query, preserving order.
func FilterDoctors(doctors []Doctor, query string) []Doctor {
	filtered := make([]Doctor, 0, len(doctors))
	for _, d := range doctors {
		if d.Matches(query) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
