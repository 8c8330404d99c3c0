package domain

import "time"

// Seed ids are stable so that re-seeding an empty store is idempotent.
const (
	SeedAdminID     = "u-admin"
	SeedProfessorID = "u-prof-demo"
	SeedStudentID   = "u-student-demo"
	SeedChannelID   = "ch-demo-algorithms"
)

var seedTime = time.Date(2024, time.September, 1, 8, 0, 0, 0, time.UTC)

// SeedUsers returns the demo accounts present on a fresh install.
func SeedUsers() []User {
	return []User{
		{
			ID: SeedAdminID, FirstName: "WAY", LastName: "Admin",
			Email: "admin@way.edu", Role: RoleAdmin, IsApproved: true, CreatedAt: seedTime,
		},
		{
			ID: SeedProfessorID, FirstName: "Laila", LastName: "Haddad",
			Email: "professor@way.edu", Role: RoleProfessor, IsApproved: true,
			Profile: &Profile{University: "WAY University", Department: "Computer Science"}, CreatedAt: seedTime,
		},
		{
			ID: SeedStudentID, FirstName: "Omar", LastName: "Saleh",
			Email: "student@way.edu", Role: RoleStudent, WalletBalance: 1200, IsApproved: true,
			Profile: &Profile{University: "WAY University", Faculty: "Engineering"}, CreatedAt: seedTime,
		},
	}
}

// SeedChannels returns the demo channels present on a fresh install.
func SeedChannels() []Channel {
	return []Channel{
		{
			ID: SeedChannelID, ProfessorID: SeedProfessorID,
			Name: "Algorithms I", Description: "Weekly problem sets and recorded lectures.",
			Price: 400, Subscribers: []string{}, Content: []ContentItem{}, CreatedAt: seedTime,
		},
	}
}

// SeedAnnouncements returns the announcements present on a fresh install.
func SeedAnnouncements() []Announcement {
	return []Announcement{
		{
			ID: "ad-welcome", ProfessorID: SeedProfessorID, ProfessorName: "Laila Haddad",
			Title: "Welcome to WAY", Content: "Algorithms I is open for subscription.",
			Tag: "general", CreatedAt: seedTime,
		},
	}
}
