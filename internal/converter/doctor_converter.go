package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              profile.ID,
		Username:        profile.User.Username,
		FullName:        profile.FullName,
		Specialization:  profile.Specialization,
		ConsultationFee: profile.ConsultationFee,
		IsAvailable:     profile.IsAvailable,
	}
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorProfileToResponse(&profiles[i])
	}
	return responses
}
