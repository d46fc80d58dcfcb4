package handler

import (
	"errors"
	"net/http"

	"healthcare-admin-portal/internal/usecase"

	"github.com/gorilla/schema"
)

const msgInvalidForm = "Invalid form submission"

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// decodeForm decodes an urlencoded form post into dst.
func decodeForm(r *http.Request, dst interface{}) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return formDecoder.Decode(dst, r.PostForm)
}

// isFragmentRequest reports whether the page script asked for a fragment.
func isFragmentRequest(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "fetch"
}

// statusFor maps a usecase error to the status of the rendered page. The page
// itself always carries the user message.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, usecase.ErrRegistrationInvalid),
		errors.Is(err, usecase.ErrAppointmentInvalid),
		errors.Is(err, usecase.ErrPatientIDRequired):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNoPendingDoctorProfile):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}
