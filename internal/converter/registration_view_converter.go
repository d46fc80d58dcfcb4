package converter

import (
	"healthcare-admin-portal/internal/delivery/dto"
	"healthcare-admin-portal/internal/domain/entity"
)

func RegistrationFormToDraft(form dto.RegistrationForm) entity.RegistrationDraft {
	return entity.RegistrationDraft{
		Name:           form.Name,
		Email:          form.Email,
		Role:           form.Role,
		Specialization: form.Specialization,
	}
}

func RegistrationStateToPage(state *entity.RegistrationState) *dto.RegisterPage {
	roles := make([]dto.Option, 0, 2)
	for _, r := range entity.Roles() {
		roles = append(roles, dto.Option{
			Value:    string(r),
			Label:    r.Label(),
			Selected: string(r) == state.Values.Role,
		})
	}

	page := &dto.RegisterPage{
		Form: dto.RegistrationForm{
			Name:           state.Values.Name,
			Email:          state.Values.Email,
			Role:           state.Values.Role,
			Specialization: state.Values.Specialization,
		},
		Roles:       roles,
		FieldErrors: state.FieldErrors,
		Error:       state.Error,
		Confirmed:   state.Confirmed(),
	}
	if state.PendingDoctor != nil {
		page.ProfileIncomplete = true
		page.PendingName = state.PendingDoctor.Name
		page.PendingSpecialization = state.PendingDoctor.DisplaySpecialization()
	}
	return page
}
