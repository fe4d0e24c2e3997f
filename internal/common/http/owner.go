package http

import (
	"context"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the id of the user every request acts for.
const HeaderUserID = "X-User-ID"

type ownerKey struct{}

func WithOwner(ctx context.Context, owner int64) context.Context {
	return context.WithValue(ctx, ownerKey{}, owner)
}

func Owner(ctx context.Context) (int64, bool) {
	owner, ok := ctx.Value(ownerKey{}).(int64)
	return owner, ok && owner > 0
}

// RequestOwner returns the owner stored by the owner middleware, zero when absent.
func RequestOwner(c echo.Context) int64 {
	owner, _ := Owner(c.Request().Context())
	return owner
}
