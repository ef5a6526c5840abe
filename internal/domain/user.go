package domain

import "time"

// User is the domain model for BudgetPro accounts. Accounts start
// inactive and unapproved until an admin acts on the access request.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	Role         Role
	Department   string
	Active       bool
	Approved     bool
	PasswordHash string
	DateJoined   time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
