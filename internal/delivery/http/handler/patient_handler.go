package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	bookingUsecase usecase.PatientBookingUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(bookingUsecase usecase.PatientBookingUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// BookAppointment books a (doctor, date, time) slot for the acting patient
func (h *PatientHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	doctorID, err := uuid.Parse(mux.Vars(r)["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.BookAppointment(r.Context(), actor, doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrSlotTaken:
			response.Conflict(w, "Doctor is already booked for this slot")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Patient role required")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// CancelAppointment cancels one of the acting patient's own appointments
func (h *PatientHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.bookingUsecase.CancelAppointment(r.Context(), actor, appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment does not belong to you")
		case usecase.ErrAppointmentNotCancellable:
			response.Conflict(w, "Appointment can no longer be cancelled")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Patient role required")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled", nil)
}

// Dashboard lists doctors and the acting patient's own appointments
func (h *PatientHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dashboard, err := h.bookingUsecase.Dashboard(r.Context(), actor)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient profile not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Patient role required")
		default:
			response.InternalServerError(w, "Failed to load dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}
