package usecase

import (
	"context"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func adminActor() entity.Actor {
	return entity.Actor{UserID: uuid.New(), Username: "admin", Role: entity.RoleAdmin}
}

func TestCreateDoctor(t *testing.T) {
	db, mock := newTestDB(t)
	userRepo := newFakeUserRepo()
	doctorRepo := newFakeDoctorProfileRepo()
	uc := NewAdminUsecase(db, newTestLogger(), userRepo, doctorRepo, newFakePatientProfileRepo(), newFakeAppointmentRepo())

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := uc.CreateDoctor(context.Background(), adminActor(), &dto.CreateDoctorRequest{
		Username:        "drbob",
		Password:        "pw2",
		FullName:        "Bob B",
		Specialization:  "Cardiology",
		ConsultationFee: decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	assert.Equal(t, "Bob B", resp.FullName)
	assert.Equal(t, "Cardiology", resp.Specialization)
	assert.True(t, resp.IsAvailable)

	user, err := userRepo.FindByUsername(db, "drbob")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleDoctor, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw2")))

	profile, err := doctorRepo.FindByUserID(db, user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.True(t, profile.IsAvailable)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDoctorDuplicateUsername(t *testing.T) {
	db, mock := newTestDB(t)
	uc := NewAdminUsecase(db, newTestLogger(), newFakeUserRepo(), newFakeDoctorProfileRepo(), newFakePatientProfileRepo(), newFakeAppointmentRepo())

	req := &dto.CreateDoctorRequest{
		Username: "drbob", Password: "pw2", FullName: "Bob B", Specialization: "Cardiology",
	}

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := uc.CreateDoctor(context.Background(), adminActor(), req)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = uc.CreateDoctor(context.Background(), adminActor(), req)
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDoctorRequiresAdminRole(t *testing.T) {
	db, _ := newTestDB(t)
	userRepo := newFakeUserRepo()
	uc := NewAdminUsecase(db, newTestLogger(), userRepo, newFakeDoctorProfileRepo(), newFakePatientProfileRepo(), newFakeAppointmentRepo())

	for _, role := range []string{entity.RoleDoctor, entity.RolePatient} {
		actor := entity.Actor{UserID: uuid.New(), Role: role}
		_, err := uc.CreateDoctor(context.Background(), actor, &dto.CreateDoctorRequest{
			Username: "drx", Password: "pw", FullName: "X", Specialization: "Y",
		})
		assert.ErrorIs(t, err, ErrForbidden, "role %s must not create doctors", role)
	}

	// Denied calls must not have created anything
	assert.Empty(t, userRepo.users)
}

func TestAdminDashboard(t *testing.T) {
	db, _ := newTestDB(t)
	doctorRepo := newFakeDoctorProfileRepo()
	patientRepo := newFakePatientProfileRepo()
	appointmentRepo := newFakeAppointmentRepo()
	uc := NewAdminUsecase(db, newTestLogger(), newFakeUserRepo(), doctorRepo, patientRepo, appointmentRepo)

	doctor := &entity.DoctorProfile{UserID: uuid.New(), FullName: "Bob B", Specialization: "Cardiology"}
	require.NoError(t, doctorRepo.Create(db, doctor))
	patient := &entity.PatientProfile{UserID: uuid.New(), FullName: "Alice A"}
	require.NoError(t, patientRepo.Create(db, patient))
	require.NoError(t, appointmentRepo.Create(db, &entity.Appointment{
		PatientProfileID: patient.ID,
		DoctorProfileID:  doctor.ID,
		Date:             "2024-05-01",
		Time:             "10:00",
		Status:           entity.AppointmentStatusBooked,
	}))

	dashboard, err := uc.Dashboard(context.Background(), adminActor())
	require.NoError(t, err)
	assert.Len(t, dashboard.Doctors, 1)
	assert.Len(t, dashboard.Patients, 1)
	assert.Len(t, dashboard.Appointments, 1)

	// Read-only: a second call with no writes in between returns the same
	again, err := uc.Dashboard(context.Background(), adminActor())
	require.NoError(t, err)
	assert.Equal(t, dashboard, again)

	_, err = uc.Dashboard(context.Background(), entity.Actor{UserID: uuid.New(), Role: entity.RolePatient})
	assert.ErrorIs(t, err, ErrForbidden)
}
