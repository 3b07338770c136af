// Package services contains the server business logic: credential checks
// and token issuance, plus CRUD over administrators and vehicles.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/dmitrijs2005/motorpool/internal/logging"
	"github.com/dmitrijs2005/motorpool/internal/server/models"
	"github.com/dmitrijs2005/motorpool/internal/server/repositories/repomanager"
)

// TokenIssuer is implemented by auth.Issuer.
type TokenIssuer interface {
	Issue(admin *models.Administrator) (string, error)
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Administrator *models.Administrator
	Token         string
}

type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	issuer      TokenIssuer
	log         logging.Logger
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, issuer TokenIssuer, log logging.Logger) *AuthService {
	return &AuthService{db: db, repomanager: m, issuer: issuer, log: log}
}

// Authenticate returns the administrator whose email and secret match. It
// never tells an unknown email apart from a wrong secret: both yield
// common.ErrorUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, email, secret string) (*models.Administrator, error) {
	repo := s.repomanager.Administrators(s.db)

	admin, err := repo.FindByCredentials(ctx, email, secret)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		s.log.Error(ctx, "credential lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	return admin, nil
}

// Login authenticates and issues an access token. A token that cannot be
// issued is an internal error; an empty token is never returned.
func (s *AuthService) Login(ctx context.Context, email, secret string) (*LoginResult, error) {
	admin, err := s.Authenticate(ctx, email, secret)
	if err != nil {
		return nil, err
	}

	token, err := s.issuer.Issue(admin)
	if err == nil && token == "" {
		err = common.ErrSigningKeyMissing
	}
	if err != nil {
		s.log.Error(ctx, "token issuance failed", "administrator_id", admin.ID, "error", err)
		return nil, fmt.Errorf("%w: issue token: %w", common.ErrorInternal, err)
	}

	return &LoginResult{Administrator: admin, Token: token}, nil
}
