package domain

import "time"

// Role is the kind of account a user holds.
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleProfessor, RoleAdmin:
		return true
	}
	return false
}

// Profile holds the optional attributes a user may fill in.
type Profile struct {
	University string `json:"university,omitempty"`
	Faculty    string `json:"faculty,omitempty"`
	Department string `json:"department,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Bio        string `json:"bio,omitempty"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
}

// User models an account. WalletBalance and StudentCount change only through
// the ledger operations.
type User struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"passwordHash,omitempty"`
	Role          Role      `json:"role"`
	WalletBalance int64     `json:"walletBalance"`
	StudentCount  int       `json:"studentCount"`
	IsApproved    bool      `json:"isApproved"`
	Profile       *Profile  `json:"profile,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DisplayName is the name shown next to announcements and channels.
func (u User) DisplayName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
