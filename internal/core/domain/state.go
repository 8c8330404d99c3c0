package domain

import "slices"

// Theme is the UI colour scheme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Snapshot is the ledger-relevant part of the application state. It is
// treated as a value: operations return a new Snapshot and never touch the
// slices of the one they were given.
type Snapshot struct {
	Users    []User
	Channels []Channel
}

// State is everything the application persists.
type State struct {
	Snapshot      Snapshot
	Announcements []Announcement // newest first
	SessionUserID string         // empty when nobody is logged in
	Theme         Theme
}

// FindUser returns the user with the given id and its index.
func (s Snapshot) FindUser(id string) (User, int, bool) {
	for i, u := range s.Users {
		if u.ID == id {
			return u, i, true
		}
	}
	return User{}, -1, false
}

// FindUserByEmail does a case-sensitive email lookup.
func (s Snapshot) FindUserByEmail(email string) (User, bool) {
	for _, u := range s.Users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

// FindChannel returns the channel with the given id and its index.
func (s Snapshot) FindChannel(id string) (Channel, int, bool) {
	for i, c := range s.Channels {
		if c.ID == id {
			return c, i, true
		}
	}
	return Channel{}, -1, false
}

// ChannelsOf lists the channels owned by professorID.
func (s Snapshot) ChannelsOf(professorID string) []Channel {
	var out []Channel
	for _, c := range s.Channels {
		if c.ProfessorID == professorID {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns a copy of s that shares no slices with it.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Users:    make([]User, len(s.Users)),
		Channels: make([]Channel, len(s.Channels)),
	}
	for i, u := range s.Users {
		out.Users[i] = u.clone()
	}
	for i, c := range s.Channels {
		out.Channels[i] = c.clone()
	}
	return out
}

// Clone returns a deep copy of st.
func (st *State) Clone() *State {
	if st == nil {
		return nil
	}
	out := &State{
		Snapshot:      st.Snapshot.Clone(),
		Announcements: slices.Clone(st.Announcements),
		SessionUserID: st.SessionUserID,
		Theme:         st.Theme,
	}
	return out
}

func (u User) clone() User {
	if u.Profile != nil {
		p := *u.Profile
		u.Profile = &p
	}
	return u
}

func (c Channel) clone() Channel {
	c.Subscribers = slices.Clone(c.Subscribers)
	c.Content = slices.Clone(c.Content)
	return c
}
