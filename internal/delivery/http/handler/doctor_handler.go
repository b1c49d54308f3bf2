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

type DoctorHandler struct {
	treatmentUsecase usecase.DoctorTreatmentUsecase
	validator        *validator.CustomValidator
}

func NewDoctorHandler(treatmentUsecase usecase.DoctorTreatmentUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		treatmentUsecase: treatmentUsecase,
		validator:        validator,
	}
}

// UpdateTreatment records diagnosis and prescription for an appointment
func (h *DoctorHandler) UpdateTreatment(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateTreatmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.treatmentUsecase.UpdateTreatment(r.Context(), actor, appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment is not assigned to you")
		case usecase.ErrDoctorProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Doctor role required")
		default:
			response.InternalServerError(w, "Failed to update treatment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment updated", appointment)
}

// SetAvailability toggles the acting doctor's availability flag
func (h *DoctorHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SetAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.treatmentUsecase.SetAvailability(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Doctor role required")
		default:
			response.InternalServerError(w, "Failed to update availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability updated", doctor)
}

// Dashboard lists the acting doctor's own appointments
func (h *DoctorHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dashboard, err := h.treatmentUsecase.Dashboard(r.Context(), actor)
	if err != nil {
		switch err {
		case usecase.ErrDoctorProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Doctor role required")
		default:
			response.InternalServerError(w, "Failed to load dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}
