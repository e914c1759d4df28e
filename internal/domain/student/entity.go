package student

import "time"

type Role string

const (
	RoleStudent     Role = "student"
	RoleCoordinator Role = "coordinator"
)

var RoleValues = []string{
	string(RoleStudent),
	string(RoleCoordinator),
}

// Student is a trainee enrolled in the on-the-job-training program.
type Student struct {
	ID            string
	Email         string
	PasswordHash  *string
	GoogleID      *string
	FullName      string
	School        *string
	HostOffice    *string
	Role          Role
	RequiredHours float64 // program completion target, in hours
	StartDate     *time.Time
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
