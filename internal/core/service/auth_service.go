package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
)

// AuthService implements registration, the demo login and session handling.
type AuthService struct {
	state     *StateHolder
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(state *StateHolder, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		state:     state,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a student or professor account. Professors start
// unapproved; admins exist only through the seed.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if strings.TrimSpace(in.FirstName) == "" || email == "" || in.Password == "" {
		return nil, fmt.Errorf("register: missing fields: %w", domain.ErrInvalidArgument)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("register: email %q: %w", email, domain.ErrInvalidArgument)
	}
	if in.Role != domain.RoleStudent && in.Role != domain.RoleProfessor {
		return nil, fmt.Errorf("register: role %q: %w", in.Role, domain.ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		IsApproved:   in.Role == domain.RoleStudent,
		Profile:      in.Profile,
		CreatedAt:    s.now(),
	}

	_, err = s.state.Mutate(ctx, func(next *domain.State) error {
		if _, exists := next.Snapshot.FindUserByEmail(email); exists {
			return domain.ErrUserExists
		}
		next.Snapshot.Users = append(next.Snapshot.Users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return &user, nil
}

// Login looks the account up by email. Seeded demo accounts carry no password
// hash and log in by email alone.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, ok := s.state.View().Snapshot.FindUserByEmail(email)
	if !ok {
		return "", nil, domain.ErrUserNotFound
	}
	if user.PasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return "", nil, domain.ErrInvalidCredentials
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	if _, err := s.state.Mutate(ctx, func(next *domain.State) error {
		next.SessionUserID = user.ID
		return nil
	}); err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, &user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	_, err := s.state.Mutate(ctx, func(next *domain.State) error {
		next.SessionUserID = ""
		return nil
	})
	return err
}

func (s *AuthService) Me(_ context.Context, userID string) (*domain.User, error) {
	user, _, ok := s.state.View().Snapshot.FindUser(userID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// CurrentSession resolves the stored session id against the live users, so a
// balance change after login is always visible.
func (s *AuthService) CurrentSession(ctx context.Context) (*domain.User, error) {
	id := s.state.View().SessionUserID
	if id == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.Me(ctx, id)
}

func (s *AuthService) ApproveProfessor(ctx context.Context, professorID string) (*domain.User, error) {
	var approved domain.User
	_, err := s.state.Mutate(ctx, func(next *domain.State) error {
		u, i, ok := next.Snapshot.FindUser(professorID)
		if !ok {
			return domain.ErrUserNotFound
		}
		if u.Role != domain.RoleProfessor {
			return fmt.Errorf("approve %q: not a professor: %w", professorID, domain.ErrInvalidArgument)
		}
		next.Snapshot.Users[i].IsApproved = true
		approved = next.Snapshot.Users[i]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("professor_id", professorID).Msg("professor approved")
	return &approved, nil
}

func (s *AuthService) generateToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     s.now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
