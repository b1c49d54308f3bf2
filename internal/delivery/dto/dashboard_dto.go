package dto

// Per-role dashboard payloads.

type AdminDashboardResponse struct {
	Doctors      []DoctorResponse      `json:"doctors"`
	Patients     []PatientResponse     `json:"patients"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type PatientDashboardResponse struct {
	Doctors      []DoctorResponse      `json:"doctors"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type DoctorDashboardResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}
