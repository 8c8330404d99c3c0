package handler

import (
	"time"

	"github.com/way-campus/way/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Requests ---

type profileRequest struct {
	University string `json:"university" validate:"max=120"`
	Faculty    string `json:"faculty"    validate:"max=120"`
	Department string `json:"department" validate:"max=120"`
	Phone      string `json:"phone"      validate:"max=32"`
	Bio        string `json:"bio"        validate:"max=1000"`
	AvatarURL  string `json:"avatarUrl"  validate:"omitempty,url"`
}

type registerRequest struct {
	FirstName string          `json:"firstName" validate:"required,max=80"`
	LastName  string          `json:"lastName"  validate:"max=80"`
	Email     string          `json:"email"     validate:"required,email"`
	Password  string          `json:"password"  validate:"required,min=6"`
	Role      string          `json:"role"      validate:"required,oneof=student professor"`
	Profile   *profileRequest `json:"profile"`
}

// loginRequest leaves password optional: demo accounts log in by email only.
type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password"`
}

type createChannelRequest struct {
	Name        string `json:"name"        validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
	Price       int64  `json:"price"       validate:"gte=0"`
}

type publishAnnouncementRequest struct {
	Title   string `json:"title"   validate:"required,max=160"`
	Content string `json:"content" validate:"required,max=4000"`
	Tag     string `json:"tag"     validate:"max=40"`
}

type askRequest struct {
	Question string `json:"question" validate:"required,max=4000"`
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=dark light"`
}

// --- Responses ---

type userResponse struct {
	ID            string          `json:"id"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	Email         string          `json:"email"`
	Role          string          `json:"role"`
	WalletBalance int64           `json:"walletBalance"`
	StudentCount  int             `json:"studentCount"`
	IsApproved    bool            `json:"isApproved"`
	Profile       *domain.Profile `json:"profile,omitempty"`
	CreatedAt     string          `json:"createdAt"`
	// Standing is set for professors only.
	Standing *standingResponse `json:"standing,omitempty"`
}

type standingResponse struct {
	ProfessorID  string `json:"professorId"`
	StudentCount int    `json:"studentCount"`
	Tier         string `json:"tier"`
	Aura         string `json:"aura,omitempty"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}

type channelResponse struct {
	ID              string               `json:"id"`
	ProfessorID     string               `json:"professorId"`
	Name            string               `json:"name"`
	Description     string               `json:"description,omitempty"`
	Price           int64                `json:"price"`
	SubscriberCount int                  `json:"subscriberCount"`
	Subscribers     []string             `json:"subscribers"`
	Content         []domain.ContentItem `json:"content"`
	CreatedAt       string               `json:"createdAt"`
}

type channelListResponse struct {
	Channels []channelResponse `json:"channels"`
}

type announcementResponse struct {
	ID            string `json:"id"`
	ProfessorID   string `json:"professorId"`
	ProfessorName string `json:"professorName"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Tag           string `json:"tag"`
	CreatedAt     string `json:"createdAt"`
}

type announcementListResponse struct {
	Announcements []announcementResponse `json:"announcements"`
}

type walletResponse struct {
	StudentID        string `json:"studentId"`
	WalletBalance    int64  `json:"walletBalance"`
	ChannelID        string `json:"channelId,omitempty"`
	AlreadyProcessed bool   `json:"alreadyProcessed,omitempty"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
