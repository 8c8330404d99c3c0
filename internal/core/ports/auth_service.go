package ports

import (
	"context"

	"github.com/way-campus/way/internal/core/domain"
)

// RegisterInput carries the fields of the registration form.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      domain.Role
	Profile   *domain.Profile
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context) error
	// CurrentSession returns the user logged in on this instance, refreshed
	// from the user table.
	CurrentSession(ctx context.Context) (*domain.User, error)
	// Me resolves the live user record for id.
	Me(ctx context.Context, userID string) (*domain.User, error)
	ApproveProfessor(ctx context.Context, professorID string) (*domain.User, error)
}
