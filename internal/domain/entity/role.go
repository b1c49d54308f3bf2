package entity

// Role names. The set is closed: a user is exactly one of these and the
// role never changes after the account is created.
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// IsValidRole reports whether s is one of the known role names.
func IsValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}
