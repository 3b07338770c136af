// Package auth issues and validates the HS256 bearer tokens handed out at
// login, and decides whether a token's role may use a route.
package auth

import (
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by an access token. Subject holds the administrator id.
// Role is kept as the raw claim so that an unknown role is reported as
// forbidden rather than as a malformed token.
type Claims struct {
	Email string `json:"Email"`
	Role  string `json:"Perfil"`
	jwt.RegisteredClaims
}

// AdministratorID returns the id stored in the subject claim.
func (c *Claims) AdministratorID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: subject %q", common.ErrInvalidToken, c.Subject)
	}
	return id, nil
}
