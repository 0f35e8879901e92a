package items

import "github.com/janisto/echo-heroes/internal/http/api/users"

// Image is a picture attached to an item.
type Image struct {
	URL  string `json:"url"  cbor:"url"  validate:"required,http_url" example:"https://example.com/foo.png"`
	Name string `json:"name" cbor:"name" validate:"required"          example:"foo"`
}

// Item is an item as submitted. Quantity and Price are pointers so that a
// missing value fails validation while an explicit zero reaches the handler.
type Item struct {
	Name        string   `json:"name"        cbor:"name"        validate:"required"     example:"Foo"`
	Description *string  `json:"description" cbor:"description"                         example:"A very nice Item"`
	Quantity    *int     `json:"quantity"    cbor:"quantity"    validate:"required"     example:"3"`
	Price       *float64 `json:"price"       cbor:"price"       validate:"required"     example:"35.4"`
	Category    []string `json:"category"    cbor:"category"                            example:"tools"`
	Image       *Image   `json:"image"       cbor:"image"       validate:"required"`
}

// CreateInput is the request body for POST /items/{item_id}.
type CreateInput struct {
	Item *Item         `json:"item" validate:"required"`
	User *users.UserIn `json:"user" validate:"required"`
}

// Filter is the query of POST /items/{item_id}. No other parameters are accepted.
type Filter struct {
	Limit *int `query:"limit" validate:"omitempty,gte=0,lte=100"`
}

// PathInput carries the item identifier.
type PathInput struct {
	ItemID int `param:"item_id" validate:"even"`
}

// Result echoes one accepted item. Unlike a flat merge of item, limit and
// user fields into one object, the parts stay nested under their own keys,
// and the user is the password-free UserOut.
type Result struct {
	ItemID int           `json:"item_id" cbor:"item_id" example:"2"`
	Limit  *int          `json:"limit"   cbor:"limit"   example:"10"`
	Item   Item          `json:"item"    cbor:"item"`
	User   users.UserOut `json:"user"    cbor:"user"`
}

// TokenData is the response of GET /items.
type TokenData struct {
	Item string `json:"item" cbor:"item" example:"my-bearer-token"`
}
