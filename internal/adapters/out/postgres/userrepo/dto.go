// Package userrepo provides data transfer objects and mapping functions for
// user directory persistence.
package userrepo

import (
	"salesreport/internal/core/domain/model/kernel"
	"salesreport/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting directory
// members. Seq is a database-assigned sequence number that preserves
// insertion order for GetAll.
type UserDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int64     `gorm:"autoIncrement;uniqueIndex"`
	Role       int
	FirstName  string
	LastName   string
	Email      *string
	IsApprover bool
}

// TableName specifies the database table name for directory entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	var email *string
	if address, ok := aggregate.Email(); ok {
		raw := address.String()
		email = &raw
	}

	return UserDTO{
		ID:         aggregate.ID().Bytes(),
		Role:       int(aggregate.Role()),
		FirstName:  aggregate.FirstName(),
		LastName:   aggregate.LastName(),
		Email:      email,
		IsApprover: aggregate.IsApprover(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var email *kernel.Email
	if dto.Email != nil {
		address, emailErr := kernel.NewEmail(*dto.Email)
		if emailErr != nil {
			return nil, emailErr
		}
		email = &address
	}

	return user.RestoreUser(id, user.Role(dto.Role), dto.FirstName, dto.LastName, email, dto.IsApprover)
}
