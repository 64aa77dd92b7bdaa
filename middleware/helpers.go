package middleware

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Dosada05/playoff-bracket/models"
	"github.com/golang-jwt/jwt/v4"
)

// Имена JWT claims
const (
	jwtClaimSubject = "sub"
	jwtClaimUserID  = "user_id"
	jwtClaimName    = "name"
	jwtClaimEmail   = "email"
	jwtClaimRole    = "role"
)

var ErrNoIdentity = errors.New("identity not found in context")

func identityFromClaims(claims jwt.MapClaims, elevatedRole string) (models.Identity, error) {
	subject, err := subjectFromClaims(claims)
	if err != nil {
		return models.Identity{}, err
	}

	name, _ := claims[jwtClaimName].(string)
	if name == "" {
		name, _ = claims[jwtClaimEmail].(string)
	}
	role, _ := claims[jwtClaimRole].(string)

	return models.Identity{
		Subject:     subject,
		DisplayName: name,
		Elevated:    elevatedRole != "" && role == elevatedRole,
	}, nil
}

func subjectFromClaims(claims jwt.MapClaims) (string, error) {
	for _, key := range []string{jwtClaimSubject, jwtClaimUserID} {
		switch v := claims[key].(type) {
		case string:
			if v != "" {
				return v, nil
			}
		case float64:
			if v != float64(int64(v)) || v <= 0 {
				return "", fmt.Errorf("invalid '%s' claim: %v", key, v)
			}
			return strconv.FormatInt(int64(v), 10), nil
		}
	}
	return "", fmt.Errorf("missing '%s' claim in token", jwtClaimSubject)
}

// GetIdentityFromContext returns the caller resolved by Authenticate.
func GetIdentityFromContext(ctx context.Context) (models.Identity, error) {
	identity, ok := ctx.Value(identityContextKey).(models.Identity)
	if !ok || identity.Subject == "" {
		return models.Identity{}, ErrNoIdentity
	}
	return identity, nil
}

// WithIdentity помещает Identity в контекст; используется в тестах хендлеров.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}
