// Package items validates and echoes items, and exposes a bearer-protected
// item lookup.
package items

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/janisto/echo-heroes/internal/http/api/users"
	"github.com/janisto/echo-heroes/internal/platform/auth"
	applog "github.com/janisto/echo-heroes/internal/platform/logging"
	"github.com/janisto/echo-heroes/internal/platform/respond"
	"github.com/janisto/echo-heroes/internal/platform/unicorn"
	"github.com/janisto/echo-heroes/internal/platform/validate"
)

// unicornPrice is the price that makes an item fly away.
const unicornPrice = 10

// Register wires item routes into the provided group. GET /items requires a
// bearer token accepted by verifier.
func Register(g *echo.Group, verifier auth.Verifier) {
	g.POST("/items/:item_id", createHandler)
	g.GET("/items", tokenHandler, auth.Middleware(verifier))
}

// createHandler godoc
//
//	@Summary		Echo item
//	@Description	Validates an item and its owner and echoes them back. Quantity 0 is refused with 417 and price 10 with 418.
//	@Tags			items
//	@Accept			json
//	@Produce		json,application/cbor
//	@Param			item_id	path		int			true	"Even item identifier"
//	@Param			limit	query		int			false	"Limit"	minimum(0)	maximum(100)
//	@Param			body	body		CreateInput	true	"Item and user"
//	@Success		201		{array}		Result
//	@Failure		417		{object}	respond.ProblemDetails
//	@Failure		418		{object}	unicorn.Body
//	@Failure		422		{object}	respond.ProblemDetails
//	@Router			/items/{item_id} [post]
func createHandler(c *echo.Context) error {
	var fieldErrs []validate.FieldError
	collect := func(err error) error {
		var ve *validate.ValidationError
		if errors.As(err, &ve) {
			fieldErrs = append(fieldErrs, ve.Fields...)
			return nil
		}
		return err
	}

	var path PathInput
	id, err := validate.PathInt(c, "item_id")
	if err == nil {
		path.ItemID = id
		err = c.Validate(&path)
	}
	if err := collect(err); err != nil {
		return err
	}

	var filter Filter
	err = validate.ForbidExtra(c.QueryParams(), &filter)
	if err == nil {
		filter.Limit, err = validate.QueryInt(c, "limit")
		if err == nil {
			err = c.Validate(&filter)
		}
	}
	if err := collect(err); err != nil {
		return err
	}

	var input CreateInput
	if err := collect(validate.Request(c, &input)); err != nil {
		return err
	}

	if len(fieldErrs) > 0 {
		return &validate.ValidationError{Message: "validation failed", Fields: fieldErrs}
	}

	if *input.Item.Quantity == 0 {
		c.Response().Header().Set("X-Error", "Error")
		return respond.Error417("Quantity should be more than 0")
	}
	if *input.Item.Price == unicornPrice {
		return unicorn.New("Unicorn Flying")
	}

	item := *input.Item
	item.Category = dedupe(item.Category)

	applog.LogInfo(c.Request().Context(), "item accepted",
		slog.Int("item_id", path.ItemID),
		slog.String("name", item.Name))

	return respond.Negotiate(c, http.StatusCreated, []Result{{
		ItemID: path.ItemID,
		Limit:  filter.Limit,
		Item:   item,
		User:   users.ToOut(*input.User),
	}})
}

// tokenHandler godoc
//
//	@Summary		Read bearer token
//	@Description	Returns the bearer token presented by the caller
//	@Tags			items
//	@Produce		json,application/cbor
//	@Success		200	{object}	TokenData
//	@Failure		401	{object}	respond.ProblemDetails
//	@Security		BearerAuth
//	@Router			/items [get]
func tokenHandler(c *echo.Context) error {
	p, err := auth.PrincipalFromEchoContext(c)
	if err != nil {
		return respond.Error401("not authenticated")
	}
	return respond.Negotiate(c, http.StatusOK, TokenData{Item: p.Token})
}

// dedupe removes repeated categories keeping first occurrences in order.
// A nil input yields an empty, non-nil slice so the field encodes as [].
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, c := range in {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
