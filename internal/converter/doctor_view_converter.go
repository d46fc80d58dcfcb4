package converter

import (
	"strconv"

	"healthcare-admin-portal/internal/delivery/dto"
	"healthcare-admin-portal/internal/domain/entity"
)

const defaultScheme = "gray"

var specializationSchemes = map[string]string{
	"Cardiology":       "red",
	"Neurology":        "purple",
	"Pediatrics":       "blue",
	"Orthopedics":      "amber",
	"Dermatology":      "pink",
	"Ophthalmology":    "teal",
	"General Practice": "emerald",
}

// SpecializationScheme returns the colour scheme of a specialization.
// Unknown specializations get the default scheme.
func SpecializationScheme(specialization string) string {
	if scheme, ok := specializationSchemes[specialization]; ok {
		return scheme
	}
	return defaultScheme
}

// DoctorToCard converts a Doctor entity to a directory card
func DoctorToCard(doctor entity.Doctor) dto.DoctorCard {
	specialization := doctor.DisplaySpecialization()
	card := dto.DoctorCard{
		ID:             doctor.ID.String(),
		Name:           doctor.Name,
		Specialization: specialization,
		Scheme:         SpecializationScheme(specialization),
		Available:      doctor.Available,
	}
	if doctor.Experience != nil {
		card.Experience = strconv.Itoa(*doctor.Experience) + " years"
	}
	if doctor.Phone != nil {
		card.Phone = *doctor.Phone
	}
	return card
}

func DoctorsToCards(doctors []entity.Doctor) []dto.DoctorCard {
	cards := make([]dto.DoctorCard, len(doctors))
	for i, doctor := range doctors {
		cards[i] = DoctorToCard(doctor)
	}
	return cards
}

func DoctorDirectoryToPage(state *entity.DoctorDirectoryState, query string) *dto.DoctorsPage {
	return &dto.DoctorsPage{
		Query:   query,
		Doctors: DoctorsToCards(state.Doctors),
		Total:   len(state.Doctors),
		Loading: state.Loading(),
		Error:   state.Error,
	}
}
