// Package httperr normalizes every failure in the API to a single
// response shape: {"success": false, "message": ...} plus an HTTP status.
package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"clinic-records-api/internal/auth"
)

// Error carries a client-facing message and the HTTP status to send it
// with. Business code returns these; everything else gets translated.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string { return e.Message }

func New(message string, statusCode int) *Error {
	return &Error{Message: message, StatusCode: statusCode}
}

// Postgres error codes the translator cares about.
const (
	pgUniqueViolation = "23505"
	pgInvalidText     = "22P02"
)

// Translate reduces an arbitrary failure to an Error. Deterministic:
// the same input always yields the same message and status. Matching
// order matters; first match wins.
func Translate(err error) *Error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return New(fmt.Sprintf("Duplicate %s entered", constraintField(pgErr)), http.StatusBadRequest)
		case pgInvalidText:
			// the only text casts in our queries are uuid ids
			return New("Invalid id", http.StatusBadRequest)
		}
	}

	if errors.Is(err, jwt.ErrTokenMalformed) ||
		errors.Is(err, jwt.ErrTokenSignatureInvalid) ||
		errors.Is(err, jwt.ErrTokenUnverifiable) ||
		errors.Is(err, auth.ErrBadToken) {
		return New("JSON web token is invalid", http.StatusBadRequest)
	}
	if errors.Is(err, jwt.ErrTokenExpired) {
		return New("JSON web token has expired", http.StatusBadRequest)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, len(verrs))
		for i, fe := range verrs {
			msgs[i] = fieldMessage(fe)
		}
		return New(strings.Join(msgs, " "), http.StatusInternalServerError)
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	// unanticipated failure: never leak internals to the client
	return New("Internal server error", http.StatusInternalServerError)
}

// Write renders err as the uniform JSON error body. This is the only
// place an error response is constructed.
func Write(w http.ResponseWriter, err error) {
	e := Translate(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": e.Message,
	})
}

// constraintField recovers the offending column from a unique-constraint
// name like "users_email_key".
func constraintField(pgErr *pgconn.PgError) string {
	name := strings.TrimSuffix(pgErr.ConstraintName, "_key")
	if i := strings.Index(name, "_"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return "field"
	}
	return name
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Please enter a valid email"
	case "len":
		return fmt.Sprintf("%s must be exactly %s digits", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", fe.Field(), fe.Param())
	default:
		return "Invalid " + fe.Field()
	}
}
