package user

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// User is the API response model for a user.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Name      string `json:"name" doc:"Display name"`
	Email     string `json:"email" doc:"Normalized email address"`
	CreatedAt string `json:"created_at" doc:"RFC3339 creation time"`
}

// Session is returned by register and login.
type Session struct {
	Token     string `json:"token" doc:"Bearer token for the Authorization header"`
	ExpiresAt string `json:"expires_at" doc:"RFC3339 token expiry"`
	User      User   `json:"user"`
}

func fromService(u service.User) User {
	return User{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func sessionFromService(s *service.Session) Session {
	return Session{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
		User:      fromService(s.User),
	}
}
