package usecase

import (
	"context"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type treatmentFixture struct {
	uc            DoctorTreatmentUsecase
	db            *gorm.DB
	appointments  *fakeAppointmentRepo
	doctorRepo    *fakeDoctorProfileRepo
	doctorActor   entity.Actor
	doctorProfile *entity.DoctorProfile
	appointmentID uuid.UUID
}

func newTreatmentFixture(t *testing.T) *treatmentFixture {
	t.Helper()

	db, _ := newTestDB(t)
	doctorRepo := newFakeDoctorProfileRepo()
	appointmentRepo := newFakeAppointmentRepo()

	doctorUserID := uuid.New()
	doctorProfile := &entity.DoctorProfile{UserID: doctorUserID, FullName: "Bob B", Specialization: "Cardiology", IsAvailable: true}
	require.NoError(t, doctorRepo.Create(db, doctorProfile))

	appointment := &entity.Appointment{
		PatientProfileID: uuid.New(),
		DoctorProfileID:  doctorProfile.ID,
		Date:             "2024-05-01",
		Time:             "10:00",
		Status:           entity.AppointmentStatusBooked,
	}
	require.NoError(t, appointmentRepo.Create(db, appointment))

	return &treatmentFixture{
		uc:            NewDoctorTreatmentUsecase(db, newTestLogger(), doctorRepo, appointmentRepo),
		db:            db,
		appointments:  appointmentRepo,
		doctorRepo:    doctorRepo,
		doctorActor:   entity.Actor{UserID: doctorUserID, Username: "drbob", Role: entity.RoleDoctor},
		doctorProfile: doctorProfile,
		appointmentID: appointment.ID,
	}
}

func TestUpdateTreatment(t *testing.T) {
	f := newTreatmentFixture(t)

	resp, err := f.uc.UpdateTreatment(context.Background(), f.doctorActor, f.appointmentID,
		&dto.UpdateTreatmentRequest{Diagnosis: "Flu", Prescription: "Rest"})
	require.NoError(t, err)

	assert.Equal(t, string(entity.AppointmentStatusCompleted), resp.Status)
	assert.Equal(t, "Flu", resp.Diagnosis)
	assert.Equal(t, "Rest", resp.Prescription)

	stored, _ := f.appointments.FindByID(f.db, f.appointmentID)
	assert.Equal(t, entity.AppointmentStatusCompleted, stored.Status)
	require.NotNil(t, stored.Diagnosis)
	assert.Equal(t, "Flu", *stored.Diagnosis)
}

func TestUpdateTreatmentNotFound(t *testing.T) {
	f := newTreatmentFixture(t)

	_, err := f.uc.UpdateTreatment(context.Background(), f.doctorActor, uuid.New(),
		&dto.UpdateTreatmentRequest{Diagnosis: "Flu", Prescription: "Rest"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateTreatmentOtherDoctor(t *testing.T) {
	f := newTreatmentFixture(t)

	otherUserID := uuid.New()
	require.NoError(t, f.doctorRepo.Create(f.db, &entity.DoctorProfile{UserID: otherUserID, FullName: "Eve E"}))
	other := entity.Actor{UserID: otherUserID, Role: entity.RoleDoctor}

	_, err := f.uc.UpdateTreatment(context.Background(), other, f.appointmentID,
		&dto.UpdateTreatmentRequest{Diagnosis: "Flu", Prescription: "Rest"})
	assert.ErrorIs(t, err, ErrAppointmentNotOwned)

	// Appointment must be untouched
	stored, _ := f.appointments.FindByID(f.db, f.appointmentID)
	assert.Equal(t, entity.AppointmentStatusBooked, stored.Status)
	assert.Nil(t, stored.Diagnosis)
	assert.Nil(t, stored.Prescription)
}

func TestUpdateTreatmentRequiresDoctorRole(t *testing.T) {
	f := newTreatmentFixture(t)

	for _, role := range []string{entity.RoleAdmin, entity.RolePatient} {
		actor := entity.Actor{UserID: f.doctorActor.UserID, Role: role}
		_, err := f.uc.UpdateTreatment(context.Background(), actor, f.appointmentID,
			&dto.UpdateTreatmentRequest{Diagnosis: "Flu", Prescription: "Rest"})
		assert.ErrorIs(t, err, ErrForbidden, "role %s must not record treatments", role)
	}
}

func TestSetAvailability(t *testing.T) {
	f := newTreatmentFixture(t)

	unavailable := false
	resp, err := f.uc.SetAvailability(context.Background(), f.doctorActor, &dto.SetAvailabilityRequest{IsAvailable: &unavailable})
	require.NoError(t, err)
	assert.False(t, resp.IsAvailable)

	stored, _ := f.doctorRepo.FindByID(f.db, f.doctorProfile.ID)
	assert.False(t, stored.IsAvailable)

	available := true
	resp, err = f.uc.SetAvailability(context.Background(), f.doctorActor, &dto.SetAvailabilityRequest{IsAvailable: &available})
	require.NoError(t, err)
	assert.True(t, resp.IsAvailable)
}

func TestDoctorDashboard(t *testing.T) {
	f := newTreatmentFixture(t)

	// Another doctor's appointment must not show up
	otherDoctor := &entity.DoctorProfile{UserID: uuid.New(), FullName: "Eve E"}
	require.NoError(t, f.doctorRepo.Create(f.db, otherDoctor))
	require.NoError(t, f.appointments.Create(f.db, &entity.Appointment{
		PatientProfileID: uuid.New(),
		DoctorProfileID:  otherDoctor.ID,
		Date:             "2024-05-01",
		Time:             "10:00",
		Status:           entity.AppointmentStatusBooked,
	}))

	dashboard, err := f.uc.Dashboard(context.Background(), f.doctorActor)
	require.NoError(t, err)
	require.Len(t, dashboard.Appointments, 1)
	assert.Equal(t, f.appointmentID, dashboard.Appointments[0].ID)

	again, err := f.uc.Dashboard(context.Background(), f.doctorActor)
	require.NoError(t, err)
	assert.Equal(t, dashboard, again)

	_, err = f.uc.Dashboard(context.Background(), entity.Actor{UserID: uuid.New(), Role: entity.RoleDoctor})
	assert.ErrorIs(t, err, ErrDoctorProfileNotFound)
}
