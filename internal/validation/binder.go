package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// StrictBinder binds path params and JSON body, rejecting fields unknown to the target.
// Missing or empty body leaves target untouched.
type StrictBinder struct {
	echo.DefaultBinder
}

// NewStrictBinder builds StrictBinder
func NewStrictBinder() *StrictBinder {
	return &StrictBinder{}
}

func (b *StrictBinder) Bind(i any, c echo.Context) error {
	if err := b.BindPathParams(c, i); err != nil {
		return err
	}

	req := c.Request()
	if req.ContentLength == 0 || req.Method == http.MethodGet || req.Method == http.MethodDelete {
		return nil
	}

	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return echo.ErrUnsupportedMediaType
	}

	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(i); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}

		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unmarshal type error: expected=%v, got=%v, field=%v", typeErr.Type, typeErr.Value, typeErr.Field)).SetInternal(err)
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}

	if dec.More() {
		return echo.NewHTTPError(http.StatusBadRequest, "request body must contain single JSON object")
	}
	return nil
}
