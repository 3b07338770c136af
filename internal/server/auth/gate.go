package auth

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/dmitrijs2005/motorpool/internal/server/models"
)

// TokenValidator is implemented by Validator.
type TokenValidator interface {
	Validate(token string) (*Claims, error)
}

// Gate admits a request when its Authorization header carries a valid token
// whose role belongs to the route's role set.
type Gate struct {
	validator TokenValidator
}

func NewGate(v TokenValidator) *Gate {
	return &Gate{validator: v}
}

// Authorize checks header against required. Failures wrap
// common.ErrorUnauthorized for a missing, malformed, forged or expired token
// and common.ErrorForbidden for a role outside required.
func (g *Gate) Authorize(header string, required models.RoleSet) (*Claims, error) {
	token, err := bearerToken(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	claims, err := g.validator.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	role, err := models.ParseRole(claims.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorForbidden, err)
	}

	if !required.Contains(role) {
		return nil, fmt.Errorf("%w: role %s not in %s", common.ErrorForbidden, role, required)
	}

	return claims, nil
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", common.ErrMissingAuthHeader
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", common.ErrInvalidAuthHeader
	}

	if token == "" || strings.ContainsAny(token, " \t") {
		return "", common.ErrInvalidAuthHeader
	}

	return token, nil
}
