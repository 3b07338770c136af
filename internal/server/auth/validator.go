package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Validator checks the signature and lifetime of access tokens.
type Validator struct {
	secret   []byte
	settings settings
}

func NewValidator(secret []byte, opts ...Option) *Validator {
	return &Validator{secret: secret, settings: newSettings(opts)}
}

// Validate parses token and returns its claims. Only HS256 is accepted and
// the exp claim is mandatory. Expired tokens wrap common.ErrTokenExpired,
// every other failure wraps common.ErrInvalidToken.
func (v *Validator) Validate(token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, v.key,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.settings.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", common.ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !parsed.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

func (v *Validator) key(*jwt.Token) (any, error) {
	if len(v.secret) == 0 {
		return nil, common.ErrSigningKeyMissing
	}
	return v.secret, nil
}
