package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/way-campus/way/internal/core/domain"
)

// ctxUser extracts the identity injected by the Auth middleware. Both values
// must be present; an empty user id means the middleware did not run.
func ctxUser(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	r, _ := c.Get("role").(string)
	role = domain.Role(r)
	if !role.Valid() {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token carries an unknown role")
	}

	return userID, role, nil
}

// bindAndValidate binds the request body into req and runs the registered
// validator. Bind failures are 400, validation failures 422.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
