package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// Health responds with a simple JSON payload so load balancers and
// monitoring systems can verify the service is up.
func Health(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
