// Package hero persists and reads Hero records.
package hero

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no hero has the requested id.
	ErrNotFound = errors.New("hero not found")
	// ErrConflict is returned when an insert violates a uniqueness constraint,
	// typically a client-chosen id that is already taken.
	ErrConflict = errors.New("hero conflicts with an existing record")
)

// Hero is a stored hero row.
type Hero struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"          cbor:"id"          example:"1"`
	Name       string `gorm:"column:name;not null;index:ix_heroes_name" json:"name"        cbor:"name"        example:"Deadpond"`
	SecretName string `gorm:"column:secret_name;not null" json:"secret_name" cbor:"secret_name" example:"Dive Wilson"`
}

// TableName binds Hero to the heroes table created by the migrations.
func (Hero) TableName() string { return "heroes" }

// CreateParams holds the fields accepted when creating a hero. A nil ID lets
// the store assign the next one.
type CreateParams struct {
	ID         *int64
	Name       string
	SecretName string
}

// Service defines hero persistence operations.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*Hero, error)
	Get(ctx context.Context, id int64) (*Hero, error)
	// List returns up to limit heroes with id greater than afterID, ordered by id.
	List(ctx context.Context, afterID int64, limit int) ([]Hero, error)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}
