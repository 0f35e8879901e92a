// Package heroes exposes the persisted hero resource.
package heroes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v5"

	applog "github.com/janisto/echo-heroes/internal/platform/logging"
	"github.com/janisto/echo-heroes/internal/platform/pagination"
	"github.com/janisto/echo-heroes/internal/platform/respond"
	"github.com/janisto/echo-heroes/internal/platform/validate"
	herosvc "github.com/janisto/echo-heroes/internal/service/hero"
)

const cursorType = "hero"

// Register wires hero routes into the provided group.
func Register(g *echo.Group, svc herosvc.Service) {
	g.POST("/heroes", handleCreateHero(svc))
	g.GET("/heroes", handleListHeroes(svc))
	g.GET("/heroes/:hero_id", handleGetHero(svc))
}

// handleCreateHero godoc
//
//	@Summary		Store hero
//	@Description	Inserts one hero and returns the stored row with its id
//	@Tags			heroes
//	@Accept			json
//	@Produce		json,application/cbor
//	@Param			body	body		CreateInput	true	"Hero"
//	@Success		200		{object}	herosvc.Hero
//	@Failure		422		{object}	respond.ProblemDetails
//	@Failure		500		{object}	respond.ProblemDetails
//	@Router			/heroes [post]
func handleCreateHero(svc herosvc.Service) echo.HandlerFunc {
	return func(c *echo.Context) error {
		var input CreateInput
		if err := validate.Request(c, &input); err != nil {
			return err
		}

		ctx := c.Request().Context()
		hero, err := svc.Create(ctx, herosvc.CreateParams{
			ID:         input.ID,
			Name:       input.Name,
			SecretName: input.SecretName,
		})
		if err != nil {
			return mapServiceError(ctx, err)
		}

		applog.LogInfo(ctx, "hero stored", slog.Int64("hero_id", hero.ID))
		return respond.Negotiate(c, http.StatusOK, hero)
	}
}

// handleListHeroes godoc
//
//	@Summary		List heroes
//	@Description	Returns heroes ordered by id using keyset pagination
//	@Tags			heroes
//	@Produce		json,application/cbor
//	@Param			cursor	query		string	false	"Pagination cursor"
//	@Param			limit	query		int		false	"Heroes per page"	minimum(1)	maximum(100)
//	@Success		200		{array}		herosvc.Hero
//	@Failure		400		{object}	respond.ProblemDetails
//	@Failure		422		{object}	respond.ProblemDetails
//	@Header			200		{string}	Link	"RFC 8288 pagination links"
//	@Router			/heroes [get]
func handleListHeroes(svc herosvc.Service) echo.HandlerFunc {
	return func(c *echo.Context) error {
		limit, err := validate.QueryInt(c, "limit")
		if err != nil {
			return err
		}
		input := ListInput{Cursor: c.QueryParam("cursor"), Limit: limit}
		if err := c.Validate(&input); err != nil {
			return err
		}

		afterID, err := pagination.AfterID(input.Cursor, cursorType)
		if err != nil {
			return respond.Error400("invalid cursor")
		}

		size := input.PageSize()
		ctx := c.Request().Context()
		heroes, err := svc.List(ctx, afterID, size+1)
		if err != nil {
			return mapServiceError(ctx, err)
		}

		if len(heroes) > size {
			heroes = heroes[:size]
			next := pagination.IDCursor(cursorType, heroes[size-1].ID)
			c.Response().Header().Set("Link",
				pagination.BuildLinkHeader(c.Request().URL.Path, c.QueryParams(), next))
		}
		return respond.Negotiate(c, http.StatusOK, heroes)
	}
}

// handleGetHero godoc
//
//	@Summary		Get hero
//	@Tags			heroes
//	@Produce		json,application/cbor
//	@Param			hero_id	path		int	true	"Hero id"
//	@Success		200		{object}	herosvc.Hero
//	@Failure		404		{object}	respond.ProblemDetails
//	@Failure		422		{object}	respond.ProblemDetails
//	@Router			/heroes/{hero_id} [get]
func handleGetHero(svc herosvc.Service) echo.HandlerFunc {
	return func(c *echo.Context) error {
		id, err := validate.PathInt(c, "hero_id")
		if err != nil {
			return err
		}

		ctx := c.Request().Context()
		hero, err := svc.Get(ctx, int64(id))
		if err != nil {
			return mapServiceError(ctx, err)
		}
		return respond.Negotiate(c, http.StatusOK, hero)
	}
}

// mapServiceError turns storage failures into responses: constraint
// violations are the client's fault, anything unexpected is logged.
func mapServiceError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, herosvc.ErrNotFound):
		return respond.Error404("hero not found")
	case errors.Is(err, herosvc.ErrConflict):
		return respond.Error422("hero conflicts with an existing record", respond.ErrorDetail{
			Location: "id",
			Message:  "id is already taken",
		})
	default:
		applog.LogError(ctx, "unexpected hero storage error", err)
		return respond.Error500("internal error")
	}
}
