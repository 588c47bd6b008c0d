package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, approves requests
	RoleEmployee Role = "employee" // Self-service only
)

type User struct {
	ID             string
	EmployeeCode   string
	Email          string
	PasswordHash   string
	Role           Role
	IsTempPassword bool

	Name          string
	Position      *string
	Department    *string
	Phone         *string
	Address       *string
	JoinDate      *time.Time
	Salary        *float64
	DateOfBirth   *time.Time
	Nationality   *string
	Gender        *string
	MaritalStatus *string

	BankAccountNumber *string
	BankName          *string
	BankIFSCCode      *string
	BankPANNumber     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin checks if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type DocumentType string

const (
	DocumentTypeResume DocumentType = "resume"
	DocumentTypeOther  DocumentType = "other"
)

// Document is a file attached to a user profile (resume, ID scan, ...).
type Document struct {
	ID         string
	UserID     string
	Name       string
	URL        string
	Type       DocumentType
	UploadedAt time.Time
}
