package handler

import (
	"fmt"
	"net/http"

	"todo-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// StatusOf maps an error to its HTTP status and client message.
func StatusOf(err error) (int, string) {
	switch model.ErrorKind(err) {
	case model.NotFoundErrorKind:
		return http.StatusNotFound, model.TodoNotFoundMessage
	case model.ValidationErrorKind, model.InvalidParamErrorKind:
		return http.StatusBadRequest, err.Error()
	case model.DBErrorKind:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// HandleError writes err as a JSON error response.
func HandleError(c echo.Context, err error) error {
	status, msg := StatusOf(err)
	return c.JSON(status, ErrorResponse{Detail: msg})
}

// NewHTTPErrorHandler renders errors that escape handlers, such as unknown
// routes or recovered panics, with the same body as HandleError.
func NewHTTPErrorHandler(logger *zap.SugaredLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status, _ := StatusOf(err)
		if status >= http.StatusInternalServerError {
			logger.Errorw("request failed", "error", err, "path", c.Path())
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = HandleError(c, err)
		}
		if err != nil {
			logger.Errorw("failed writing error response", "error", err)
		}
	}
}
