package domain

import "time"

// Announcement is an immutable broadcast from a professor.
type Announcement struct {
	ID            string    `json:"id"`
	ProfessorID   string    `json:"professorId"`
	ProfessorName string    `json:"professorName"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Tag           string    `json:"tag"`
	CreatedAt     time.Time `json:"createdAt"`
}
