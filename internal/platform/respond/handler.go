package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/fxamacker/cbor/v2"
	"github.com/labstack/echo/v5"

	"github.com/janisto/echo-heroes/internal/platform/unicorn"
	"github.com/janisto/echo-heroes/internal/platform/validate"
)

// write encodes body honoring content negotiation. jsonType and cborType
// select the media types used for each encoding.
func write(w http.ResponseWriter, r *http.Request, status int, body any, jsonType, cborType string) {
	ensureVary(w.Header(), "Origin", "Accept")

	if preferCBOR(r.Header.Get("Accept")) {
		w.Header().Set("Content-Type", cborType)
		w.WriteHeader(status)
		_ = cbor.NewEncoder(w).Encode(body)
		return
	}

	w.Header().Set("Content-Type", jsonType)
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(body)
}

// writeProblem writes a Problem Details response (RFC 9457).
func writeProblem(w http.ResponseWriter, r *http.Request, problem ProblemDetails) {
	write(w, r, problem.Status, problem, mimeProblemJSON, mimeProblemCBOR)
}

// Recoverer returns Echo middleware that recovers from panics with Problem Details.
// Re-panics on http.ErrAbortHandler to preserve net/http abort semantics.
func Recoverer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				slog.ErrorContext(c.Request().Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
				)

				if resp, err := echo.UnwrapResponse(c.Response()); err == nil && resp.Committed {
					return
				}
				writeProblem(c.Response(), c.Request(), *Error500("internal server error"))
			}()
			return next(c)
		}
	}
}

// NewHTTPErrorHandler returns an Echo HTTPErrorHandler. Unicorn errors are
// written as {"message": ...} with status 418; everything else becomes
// RFC 9457 Problem Details.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(c *echo.Context, err error) {
		if resp, unwrapErr := echo.UnwrapResponse(c.Response()); unwrapErr == nil && resp.Committed {
			return
		}

		var ue *unicorn.Error
		if errors.As(err, &ue) {
			body := unicorn.Body{Message: ue.Message()}
			write(c.Response(), c.Request(), ue.StatusCode(), body, mimeJSON, mimeCBOR)
			return
		}

		writeProblem(c.Response(), c.Request(), toProblem(c, err))
	}
}

func toProblem(c *echo.Context, err error) ProblemDetails {
	var (
		pd *ProblemDetails
		ve *validate.ValidationError
		he *echo.HTTPError
		sc echo.HTTPStatusCoder
	)

	switch {
	case errors.As(err, &pd):
		return *pd

	case errors.As(err, &ve):
		problem := *Error422(ve.Message)
		for _, f := range ve.Fields {
			problem.Errors = append(problem.Errors, ErrorDetail{
				Message:  f.Message,
				Location: f.Field,
				Value:    f.Value,
			})
		}
		return problem

	case errors.Is(err, echo.ErrNotFound):
		return *Error404("resource not found")

	case errors.Is(err, echo.ErrMethodNotAllowed):
		return *NewError(http.StatusMethodNotAllowed, fmt.Sprintf("method %s not allowed", c.Request().Method))

	case errors.As(err, &he):
		return *NewError(he.Code, he.Message)

	// Echo's sentinel errors (413, 415, 429, ...) only expose a status code.
	case errors.As(err, &sc):
		return *NewError(sc.StatusCode(), http.StatusText(sc.StatusCode()))

	default:
		return *Error500("internal server error")
	}
}
