package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity to PatientResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:       profile.ID,
		Username: profile.User.Username,
		FullName: profile.FullName,
		Age:      profile.Age,
		Contact:  profile.Contact,
	}
}

// PatientProfilesToResponses converts a slice of PatientProfile entities to DTOs
func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(profiles))
	for i := range profiles {
		responses[i] = *PatientProfileToResponse(&profiles[i])
	}
	return responses
}
