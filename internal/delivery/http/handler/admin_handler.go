package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	validator    *validator.CustomValidator
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

// CreateDoctor provisions a doctor account with its profile
func (h *AdminHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.adminUsecase.CreateDoctor(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrUsernameAlreadyExists:
			response.Conflict(w, "Username already exists")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Admin role required")
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor added successfully", doctor)
}

// Dashboard lists all doctors, patients and appointments
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	dashboard, err := h.adminUsecase.Dashboard(r.Context(), actor)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "Admin role required")
		default:
			response.InternalServerError(w, "Failed to load dashboard")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}
