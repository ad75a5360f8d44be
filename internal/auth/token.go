// Package auth issues and validates the signed player identities carried on
// API and WebSocket requests. An absent or invalid token degrades to an
// anonymous identity, which downstream surfaces as a locked reward rather
// than an error.
package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"scamslayer-service/internal/domain"
)

// Claims is the JWT payload: subject carries the UID.
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Sign issues an HS256 token for a player.
func Sign(secret []byte, uid, name string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Parse validates a token and returns the identity it carries.
func Parse(secret []byte, tokenString string) (domain.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return domain.Identity{}, fmt.Errorf("invalid token")
	}
	return domain.Identity{UID: claims.Subject, Name: claims.Name}, nil
}

// FromRequest extracts the identity from a Bearer header or a token query
// parameter (the WebSocket path). Missing or invalid credentials yield the
// anonymous identity.
func FromRequest(secret []byte, r *http.Request) domain.Identity {
	tokenString := ""
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		tokenString = r.URL.Query().Get("token")
	}
	if tokenString == "" {
		return domain.Identity{}
	}
	ident, err := Parse(secret, tokenString)
	if err != nil {
		return domain.Identity{}
	}
	return ident
}
