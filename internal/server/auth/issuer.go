package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/dmitrijs2005/motorpool/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Issuer signs access tokens for authenticated administrators.
type Issuer struct {
	secret   []byte
	validity time.Duration
	settings settings
}

func NewIssuer(secret []byte, validity time.Duration, opts ...Option) *Issuer {
	return &Issuer{secret: secret, validity: validity, settings: newSettings(opts)}
}

// Issue returns a signed token for admin. With no secret configured it
// returns an empty string and common.ErrSigningKeyMissing.
func (i *Issuer) Issue(admin *models.Administrator) (string, error) {
	if len(i.secret) == 0 {
		return "", common.ErrSigningKeyMissing
	}

	now := i.settings.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: admin.Email,
		Role:  admin.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(admin.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
		},
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}
