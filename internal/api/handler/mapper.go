package handler

import (
	"github.com/way-campus/way/internal/core/domain"
	"github.com/way-campus/way/internal/core/ports"
)

// --- Request → Service input ---

func toRegisterInput(req registerRequest) ports.RegisterInput {
	in := ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      domain.Role(req.Role),
	}
	if req.Profile != nil {
		in.Profile = &domain.Profile{
			University: req.Profile.University,
			Faculty:    req.Profile.Faculty,
			Department: req.Profile.Department,
			Phone:      req.Profile.Phone,
			Bio:        req.Profile.Bio,
			AvatarURL:  req.Profile.AvatarURL,
		}
	}
	return in
}

// --- Domain → Response ---

// toUserResponse never exposes the password hash. Professors get their
// standing attached; a count the tiering rejects leaves it out.
func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	resp := &userResponse{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Role:          string(u.Role),
		WalletBalance: u.WalletBalance,
		StudentCount:  u.StudentCount,
		IsApproved:    u.IsApproved,
		Profile:       u.Profile,
		CreatedAt:     formatTime(u.CreatedAt),
	}
	if u.Role == domain.RoleProfessor {
		if st, err := domain.StandingOf(*u); err == nil {
			resp.Standing = toStandingResponse(&st)
		}
	}
	return resp
}

func toStandingResponse(st *domain.Standing) *standingResponse {
	return &standingResponse{
		ProfessorID:  st.ProfessorID,
		StudentCount: st.StudentCount,
		Tier:         string(st.Tier),
		Aura:         string(st.Aura),
	}
}

func toChannelResponse(ch *domain.Channel) channelResponse {
	subs := ch.Subscribers
	if subs == nil {
		subs = []string{}
	}
	content := ch.Content
	if content == nil {
		content = []domain.ContentItem{}
	}
	return channelResponse{
		ID:              ch.ID,
		ProfessorID:     ch.ProfessorID,
		Name:            ch.Name,
		Description:     ch.Description,
		Price:           ch.Price,
		SubscriberCount: len(subs),
		Subscribers:     subs,
		Content:         content,
		CreatedAt:       formatTime(ch.CreatedAt),
	}
}

func toAnnouncementResponse(a *domain.Announcement) announcementResponse {
	return announcementResponse{
		ID:            a.ID,
		ProfessorID:   a.ProfessorID,
		ProfessorName: a.ProfessorName,
		Title:         a.Title,
		Content:       a.Content,
		Tag:           a.Tag,
		CreatedAt:     formatTime(a.CreatedAt),
	}
}

func toWalletResponse(r *ports.WalletResult) walletResponse {
	return walletResponse{
		StudentID:        r.StudentID,
		WalletBalance:    r.WalletBalance,
		ChannelID:        r.ChannelID,
		AlreadyProcessed: r.AlreadyProcessed,
	}
}
