// Package middleware provides net/http glue for validating JSON request
// bodies against a strux schema.
package middleware

import (
	"context"
	"net/http"

	j "github.com/goccy/go-json"
	strux "github.com/spacejack/strux"
)

// ctxKeyDecoded is a typed context key for storing a decoded value.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyDecoded[T any] struct{}

// ContextWithDecoded attaches a decoded value to the context.
func ContextWithDecoded[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyDecoded[T]{}, v)
}

// DecodedFromContext retrieves a decoded value from the context.
func DecodedFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyDecoded[T]{}).(T)
	return v, ok
}

// ErrorPayload shapes Issues for JSON responses.
func ErrorPayload(issues strux.Issues) map[string]any {
	return map[string]any{"issues": issues}
}

// DecodeBody returns middleware that decodes the request body through the
// schema (typically a stripped one, so handlers only ever see declared
// fields) and stores the result in the request context. Validation failures
// are answered with 422 and an issues payload; malformed JSON with 400.
func DecodeBody[T any](s strux.Schema[T]) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, err := strux.DecodeJSONReader(r.Context(), s, r.Body)
			if err != nil {
				iss, _ := strux.AsIssues(err)
				status := http.StatusUnprocessableEntity
				if len(iss) == 1 && iss[0].Code == strux.CodeParseError {
					status = http.StatusBadRequest
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				_ = j.NewEncoder(w).Encode(ErrorPayload(iss))
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithDecoded(r.Context(), v)))
		})
	}
}
