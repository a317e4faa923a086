package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const actorContextKey = "actor"

// Tokens maps bearer tokens to the actor they authenticate.
type Tokens map[string]kernel.Actor

// ParseTokens reads a comma separated "token:actorId:role" list.
func ParseTokens(raw string) (Tokens, error) {
	tokens := make(Tokens)
	var all []error
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 || parts[0] == "" {
			all = append(all, fmt.Errorf("token entry %q must be token:actorId:role", entry))
			continue
		}
		role, err := kernel.ParseRole(parts[2])
		if err != nil {
			all = append(all, err)
			continue
		}
		actor, err := kernel.NewActor(parts[1], role)
		if err != nil {
			all = append(all, err)
			continue
		}
		tokens[parts[0]] = actor
	}
	if err := errors.Join(all...); err != nil {
		return nil, err
	}
	return tokens, nil
}

// BearerAuth resolves the Authorization header to an actor. Unknown or
// missing tokens get 401; role checks happen in the use cases.
func BearerAuth(tokens Tokens) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(key string, c echo.Context) (bool, error) {
			actor, ok := tokens[key]
			if !ok {
				return false, nil
			}
			c.Set(actorContextKey, actor)
			return true, nil
		},
		ErrorHandler: func(_ error, c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Missing or invalid bearer token",
			})
		},
	})
}

func actorFrom(c echo.Context) (kernel.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(kernel.Actor)
	return actor, ok
}
