package session

import "quickcart/internal/models"

// Session carries the current authenticated user through the menu layer.
// It is passed explicitly to every handler; there is no global login state.
// Lifecycle: anonymous → authenticated(role) → anonymous on logout.
type Session struct {
	user *models.User
}

func New() *Session {
	return &Session{}
}

func (s *Session) Login(u *models.User) {
	s.user = u
}

func (s *Session) Logout() {
	s.user = nil
}

// Current returns the logged-in user or nil when anonymous.
func (s *Session) Current() *models.User {
	return s.user
}

func (s *Session) IsAuthenticated() bool {
	return s.user != nil
}

// Role returns the current user's role, or "" when anonymous.
func (s *Session) Role() models.UserRole {
	if s.user == nil {
		return ""
	}
	return s.user.Role
}
