// Package files accepts multipart uploads and reports on them.
package files

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/janisto/echo-heroes/internal/platform/respond"
	"github.com/janisto/echo-heroes/internal/platform/validate"
)

// Data summarises an upload: the byte length of "file" and the declared
// content type of "file_b".
type Data struct {
	File  int64  `json:"file"   cbor:"file"   example:"1024"`
	FileB string `json:"file_b" cbor:"file_b" example:"image/png"`
}

// Register wires the upload route into the provided group.
func Register(g *echo.Group) {
	g.POST("/user/files", uploadHandler)
}

// uploadHandler godoc
//
//	@Summary		Upload files
//	@Description	Accepts two multipart parts and returns the size of the first and content type of the second
//	@Tags			files
//	@Accept			mpfd
//	@Produce		json,application/cbor
//	@Param			file	formData	file	true	"Counted file"
//	@Param			file_b	formData	file	true	"Typed file"
//	@Success		200		{object}	Data
//	@Failure		422		{object}	respond.ProblemDetails
//	@Router			/user/files [post]
func uploadHandler(c *echo.Context) error {
	var missing []validate.FieldError

	file, err := c.FormFile("file")
	if err != nil {
		missing = append(missing, validate.FieldError{Field: "file", Message: "file is required"})
	}
	fileB, err := c.FormFile("file_b")
	if err != nil {
		missing = append(missing, validate.FieldError{Field: "file_b", Message: "file_b is required"})
	}
	if len(missing) > 0 {
		return &validate.ValidationError{Message: "validation failed", Fields: missing}
	}

	return respond.Negotiate(c, http.StatusOK, Data{
		File:  file.Size,
		FileB: fileB.Header.Get("Content-Type"),
	})
}
