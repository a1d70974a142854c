// Package accountrepo persists user identities and their role records.
// One table carries the identity, one the single concrete role per user.
package accountrepo

import (
	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user identities.
// The tax code carries a unique index because it is the login credential.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Surname   string
	TaxID     string `gorm:"column:tax_id;uniqueIndex"`
	Email     string
	Matricola string
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// RoleDTO represents the single role record each user carries.
type RoleDTO struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind   int
}

// TableName specifies the database table name for role records.
func (RoleDTO) TableName() string {
	return "roles"
}

func userFromDomain(user account.User) UserDTO {
	return UserDTO{
		ID:        user.ID().Bytes(),
		Name:      user.Name(),
		Surname:   user.Surname(),
		TaxID:     user.TaxID(),
		Email:     user.Email(),
		Matricola: user.Matricola(),
	}
}

func userToDomain(dto UserDTO) (account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return account.User{}, err
	}

	if dto.Matricola != "" {
		return account.NewStaffUser(id, dto.Name, dto.Surname, dto.TaxID, dto.Email, dto.Matricola)
	}
	return account.NewUser(id, dto.Name, dto.Surname, dto.TaxID, dto.Email)
}

func roleFromDomain(role account.Role) RoleDTO {
	return RoleDTO{
		UserID: role.User().ID().Bytes(),
		Kind:   int(role.Kind()),
	}
}
