package domain

import "time"

// ContentItem is a single entry in a channel's material list.
type ContentItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Kind      string    `json:"kind,omitempty"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Channel is a professor's paid course space.
type Channel struct {
	ID          string        `json:"id"`
	ProfessorID string        `json:"professorId"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       int64         `json:"price"`
	Subscribers []string      `json:"subscribers"`
	Content     []ContentItem `json:"content"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// HasSubscriber reports whether userID is already subscribed.
func (c Channel) HasSubscriber(userID string) bool {
	for _, id := range c.Subscribers {
		if id == userID {
			return true
		}
	}
	return false
}
