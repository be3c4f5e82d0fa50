package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// envelope is the fixed response wrapper returned by every endpoint:
// {success, message, data, error}, plus count on list responses.
type envelope struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Count   *int    `json:"count,omitempty"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

func respondList(c echo.Context, message string, count int, data any) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Message: message, Count: &count, Data: data})
}

func respondError(c echo.Context, status int, message string, err error) error {
	msg := err.Error()
	return c.JSON(status, envelope{Success: false, Message: message, Error: &msg})
}
