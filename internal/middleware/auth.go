package middleware

import (
	"context"
	"fmt"
	"net/http"

	"clinic-records-api/internal/auth"
	"clinic-records-api/internal/httperr"
	"clinic-records-api/internal/model"
)

// Cookie slots for the two independent browser sessions. An admin and a
// patient session can coexist; each gate reads only its own slot.
const (
	AdminCookie   = "adminToken"
	PatientCookie = "patientToken"
)

type ctxKey struct{}

// UserLookup resolves a token's embedded id to a stored user.
type UserLookup interface {
	UserByID(ctx context.Context, id string) (*model.User, error)
}

// RequireRole gates a route to one role. The token is read from the
// given cookie slot only; a valid credential for the other slot never
// cross-authenticates because the stored user's role must match too.
func RequireRole(role model.Role, cookieName string, users UserLookup, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				httperr.Write(w, httperr.New(fmt.Sprintf("%s not Authenticated!", role), http.StatusBadRequest))
				return
			}

			claims, err := auth.ParseToken(cookie.Value, secret)
			if err != nil {
				// jwt failures keep their native type for the translator
				httperr.Write(w, err)
				return
			}

			user, err := users.UserByID(r.Context(), claims.UserID)
			if err != nil {
				httperr.Write(w, err)
				return
			}

			if user.Role != role {
				httperr.Write(w, httperr.New(fmt.Sprintf("%s not authorized for this role!", user.Role), http.StatusForbidden))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser stores the authenticated user in the request context.
func WithUser(ctx context.Context, u *model.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// UserFromContext returns the authenticated user, or nil outside a
// RequireRole-gated route.
func UserFromContext(ctx context.Context) *model.User {
	u, _ := ctx.Value(ctxKey{}).(*model.User)
	return u
}
