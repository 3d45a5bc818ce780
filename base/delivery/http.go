package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// ErrorBody is the structured error contract: machine-readable code
// plus a human message.
type ErrorBody struct {
	Error   domain.ErrorCode `json:"error"`
	Message string           `json:"message"`
}

// MakeJsonResp renders data in the standard JSON envelope. Errors of
// type *domain.AppError select their own status code and render as
// ErrorBody; other errors keep the caller-provided status.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if appErr, ok := domain.AsAppError(err); ok {
			return c.JSON(appErr.HttpStatus, ErrorBody{appErr.Code, appErr.Message})
		}
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
			status = http.StatusNotFound
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
