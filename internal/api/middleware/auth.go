package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gctu/attendance-api/internal/api/metrics"
	"github.com/gctu/attendance-api/internal/core/domain"
	"github.com/gctu/attendance-api/internal/core/ports"
)

// UserContextKey holds the *domain.User resolved by Auth.
const UserContextKey = "user"

// Auth extracts the bearer token, verifies it and loads the user it names.
// Handlers read the user from the context and never parse tokens themselves.
func Auth(auth ports.AuthService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return domain.ErrTokenMissing
			}

			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				kind := rejectionKind(err)
				metrics.TokenRejectionsTotal.WithLabelValues(kind).Inc()
				log.Debug().Str("kind", kind).Str("path", c.Path()).Msg("request rejected by auth gate")
				return err
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func rejectionKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenMissing):
		return "missing"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenInvalid):
		return "invalid"
	case errors.Is(err, domain.ErrSubjectNotFound):
		return "subject_not_found"
	}
	return "error"
}
