package heroes

import "github.com/janisto/echo-heroes/internal/platform/pagination"

// CreateInput is the request body for POST /heroes. ID is optional; the
// store assigns one when it is absent.
type CreateInput struct {
	ID         *int64 `json:"id"          example:"1"`
	Name       string `json:"name"        validate:"required,max=255" example:"Deadpond"`
	SecretName string `json:"secret_name" validate:"required,max=255" example:"Dive Wilson"`
}

// ListInput is the query of GET /heroes.
type ListInput = pagination.Params
