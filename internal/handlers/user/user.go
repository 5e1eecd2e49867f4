// Package user exposes the identity endpoints: registration, login and
// profile management.
package user

import (
	"github.com/carson-networks/budget-server/internal/service"
)

// ProfileBody is the API response model for a user profile.
type ProfileBody struct {
	ID    string `json:"id" doc:"User UUID"`
	Name  string `json:"name" doc:"Display name"`
	Email string `json:"email" doc:"Email address"`
}

func profileBody(p *service.Profile) ProfileBody {
	return ProfileBody{
		ID:    p.ID.String(),
		Name:  p.Name,
		Email: p.Email,
	}
}
