package service

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-server/internal/storage/sqlconfig"
)

// Profile is the public view of a user. The password hash never leaves the
// service layer.
type Profile struct {
	ID    uuid.UUID
	Name  string
	Email string
}

func profileFromStorage(row *sqlconfig.User) *Profile {
	return &Profile{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
	}
}
