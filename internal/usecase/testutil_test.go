package usecase

import (
	"io"
	"testing"

	"hospital-management-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB wraps a sqlmock connection in a gorm handle. The fakes below
// never touch the connection; only transaction boundaries (Begin/Commit)
// reach the mock.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func duplicateKeyErr(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

// In-memory repository fakes. They mimic the storage-level constraints:
// unique usernames and the unique (doctor, date, time) slot index.

type fakeUserRepo struct {
	users map[uuid.UUID]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]entity.User)}
}

func (r *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return duplicateKeyErr("uq_users_username")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		found := u
		return &found, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) CountByRole(db *gorm.DB, role string) (int64, error) {
	var count int64
	for _, u := range r.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

type fakePatientProfileRepo struct {
	profiles map[uuid.UUID]entity.PatientProfile
}

func newFakePatientProfileRepo() *fakePatientProfileRepo {
	return &fakePatientProfileRepo{profiles: make(map[uuid.UUID]entity.PatientProfile)}
}

func (r *fakePatientProfileRepo) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *fakePatientProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakePatientProfileRepo) FindAll(db *gorm.DB) ([]entity.PatientProfile, error) {
	out := make([]entity.PatientProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, nil
}

type fakeDoctorProfileRepo struct {
	profiles map[uuid.UUID]entity.DoctorProfile
}

func newFakeDoctorProfileRepo() *fakeDoctorProfileRepo {
	return &fakeDoctorProfileRepo{profiles: make(map[uuid.UUID]entity.DoctorProfile)}
}

func (r *fakeDoctorProfileRepo) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *fakeDoctorProfileRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DoctorProfile, error) {
	if p, ok := r.profiles[id]; ok {
		found := p
		return &found, nil
	}
	return nil, nil
}

func (r *fakeDoctorProfileRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorProfileRepo) FindAll(db *gorm.DB) ([]entity.DoctorProfile, error) {
	out := make([]entity.DoctorProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeDoctorProfileRepo) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	r.profiles[profile.ID] = *profile
	return nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]entity.Appointment)}
}

func (r *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	for _, a := range r.appointments {
		if a.DoctorProfileID == appointment.DoctorProfileID && a.Date == appointment.Date && a.Time == appointment.Time {
			return duplicateKeyErr("uq_appointments_slot")
		}
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	r.appointments[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	if a, ok := r.appointments[id]; ok {
		found := a
		return &found, nil
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) FindBySlot(db *gorm.DB, doctorProfileID uuid.UUID, date, time string) (*entity.Appointment, error) {
	for _, a := range r.appointments {
		if a.DoctorProfileID == doctorProfileID && a.Date == date && a.Time == time {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) FindByPatientProfileID(db *gorm.DB, patientProfileID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.PatientProfileID == patientProfileID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByDoctorProfileID(db *gorm.DB, doctorProfileID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.DoctorProfileID == doctorProfileID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	out := make([]entity.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	r.appointments[appointment.ID] = *appointment
	return nil
}
