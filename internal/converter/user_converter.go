package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		response.DoctorProfile = DoctorProfileToResponse(user.DoctorProfile)
	}
	if user.PatientProfile != nil {
		response.PatientProfile = PatientProfileToResponse(user.PatientProfile)
	}

	return response
}
