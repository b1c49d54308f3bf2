package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentLifecycle(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusBooked}
	assert.True(t, a.IsBooked())
	assert.False(t, a.IsCancelled())

	a.Complete("Flu", "Rest")
	assert.Equal(t, AppointmentStatusCompleted, a.Status)
	assert.False(t, a.IsBooked())
	require.NotNil(t, a.Diagnosis)
	assert.Equal(t, "Flu", *a.Diagnosis)
	require.NotNil(t, a.Prescription)
	assert.Equal(t, "Rest", *a.Prescription)

	b := &Appointment{Status: AppointmentStatusBooked}
	b.Cancel()
	assert.True(t, b.IsCancelled())
	assert.False(t, b.IsBooked())
}

func TestIsValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleDoctor, RolePatient} {
		assert.True(t, IsValidRole(role), role)
	}
	for _, role := range []string{"", "superuser", "Admin", "ADMIN"} {
		assert.False(t, IsValidRole(role), role)
	}
}
