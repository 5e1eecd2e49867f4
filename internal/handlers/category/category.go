// Package category exposes the category endpoints. Every operation is
// scoped to the authenticated user.
package category

import (
	"github.com/carson-networks/budget-server/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID     string `json:"id" doc:"Category UUID"`
	UserID string `json:"user_id" doc:"Owning user UUID"`
	Name   string `json:"name" doc:"Category name, unique per user and type"`
	Type   string `json:"type" enum:"income,expense" doc:"Transaction type"`
}

func categoryBody(c *service.Category) Category {
	return Category{
		ID:     c.ID.String(),
		UserID: c.OwnerID.String(),
		Name:   c.Name,
		Type:   c.Type,
	}
}
