// Package userrepo provides data transfer objects and mapping functions for
// user persistence. It implements the repository pattern for the user
// aggregate, converting between domain entities and database rows.
package userrepo

import (
	"time"

	"workforce/internal/core/domain/model/kernel"
	"workforce/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// Username and email carry unique indexes; the role is constrained to the
// three defined values at the schema level.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"uniqueIndex;not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Role      string    `gorm:"not null;check:role IN ('admin','employer','worker')"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:        aggregate.ID().Bytes(),
		Username:  aggregate.Username(),
		Email:     aggregate.Email(),
		Role:      aggregate.Role().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Username, dto.Email, role, dto.CreatedAt)
}
