package utils

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

func EchoHandleGenericError(echoCtx echo.Context, err error, status int) error {
	Logger.WithError(err).WithField("status", status).Error("Error handling request")
	return echoCtx.JSON(status, map[string]string{"status": err.Error()})
}

func EchoHandleBadRequest(echoCtx echo.Context, err error) error {
	return EchoHandleGenericError(echoCtx, err, http.StatusBadRequest)
}

func EchoHandleInternalError(echoCtx echo.Context, err error) error {
	return EchoHandleGenericError(echoCtx, err, http.StatusInternalServerError)
}

// FormatConfidence renders a [0,1] confidence score as a percentage string
func FormatConfidence(confidence float64) string {
	return fmt.Sprintf("%.2f%%", confidence*100)
}
