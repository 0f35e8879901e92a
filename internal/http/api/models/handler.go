// Package models describes one of the supported neural network models.
package models

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/janisto/echo-heroes/internal/platform/respond"
)

// Names lists the accepted model names.
var Names = []string{"alexnet", "resnet", "lenet"}

// Input holds the path parameter.
type Input struct {
	ModelName string `param:"model_name" validate:"oneof=alexnet resnet lenet"`
}

// Data echoes the model name with the optional ad_id cookie and x-token
// header; absent values are null.
type Data struct {
	Model  string  `json:"model"   cbor:"model"   example:"alexnet"`
	AdID   *string `json:"ad_id"   cbor:"ad_id"   example:"campaign-7"`
	XToken *string `json:"x-token" cbor:"x-token" example:"abc123"`
}

// Register wires model routes into the provided group.
func Register(g *echo.Group) {
	g.GET("/models/:model_name", getHandler)
}

// getHandler godoc
//
//	@Summary		Get model
//	@Tags			models
//	@Produce		json,application/cbor
//	@Param			model_name	path		string	true	"Model name"	Enums(alexnet, resnet, lenet)
//	@Param			ad_id		header		string	false	"Sent as cookie ad_id"
//	@Param			x-token		header		string	false	"Client token"
//	@Success		200			{object}	Data
//	@Failure		422			{object}	respond.ProblemDetails
//	@Router			/models/{model_name} [get]
func getHandler(c *echo.Context) error {
	input := Input{ModelName: c.Param("model_name")}
	if err := c.Validate(&input); err != nil {
		return err
	}

	data := Data{Model: input.ModelName}
	if cookie, err := c.Cookie("ad_id"); err == nil {
		data.AdID = &cookie.Value
	}
	if values := c.Request().Header.Values("X-Token"); len(values) > 0 {
		data.XToken = &values[0]
	}
	return respond.Negotiate(c, http.StatusOK, data)
}
