package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type userIDKey struct{}

// UserID returns the authenticated user id stored by the auth middleware,
// or "" when the request is anonymous.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}

// requireUser rejects requests without a valid bearer token.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := s.userFromRequest(r)
		if err != nil {
			s.writeJSON(w, http.StatusUnauthorized, errorResponse{
				Code:   "UNAUTHENTICATED",
				Notice: errorNotice("You must be signed in to do that"),
			})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID)))
	})
}

// optionalUser attaches the user id when a valid token is present and
// lets anonymous requests through untouched.
func (s *Server) optionalUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, err := s.userFromRequest(r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID))
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) userFromRequest(r *http.Request) (string, error) {
	const prefix = "Bearer "

	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return "", fmt.Errorf("missing bearer token")
	}

	token, err := jwt.Parse(strings.TrimPrefix(header, prefix), func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.tokenKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}
