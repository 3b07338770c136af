// Package admincli provisions administrators straight into the store from
// an operator's terminal.
package admincli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/motorpool/internal/flagx"
	"github.com/dmitrijs2005/motorpool/internal/server/models"
)

var ErrSecretMismatch = errors.New("secrets do not match")

// Creator stores a new administrator.
type Creator interface {
	Create(ctx context.Context, admin *models.Administrator) (*models.Administrator, error)
}

// Validator checks a request struct and returns the field messages.
type Validator interface {
	Struct(s any) error
}

type Options struct {
	Email string
	Role  string
}

// ParseArgs reads -email and -role. Other flags are left to the server
// configuration loader.
func ParseArgs(args []string) (Options, error) {
	opts := Options{Role: models.RoleEditor.String()}

	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.Email, "email", "", "administrator email")
	fs.StringVar(&opts.Role, "role", opts.Role, "administrator role: Admin or Editor")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-email", "-role"})); err != nil {
		return Options{}, err
	}
	return opts, nil
}

type provisionRequest struct {
	Email  string `json:"Email" validate:"required,contains=@,max=255"`
	Secret string `json:"Senha" validate:"min=6,max=50"`
	Role   string `json:"Perfil" validate:"role"`
}

// Provision asks for any missing details, reads the secret twice and
// stores the administrator.
func Provision(ctx context.Context, p *Prompter, v Validator, store Creator, opts Options) (*models.Administrator, error) {
	email := opts.Email
	if email == "" {
		var err error
		if email, err = p.Text("Email: "); err != nil {
			return nil, fmt.Errorf("read email: %w", err)
		}
	}

	secret, err := p.Secret("Senha: ")
	if err != nil {
		return nil, fmt.Errorf("read secret: %w", err)
	}
	confirm, err := p.Secret("Confirme a senha: ")
	if err != nil {
		return nil, fmt.Errorf("read secret: %w", err)
	}
	if string(secret) != string(confirm) {
		return nil, ErrSecretMismatch
	}

	req := provisionRequest{Email: email, Secret: string(secret), Role: opts.Role}
	if err := v.Struct(&req); err != nil {
		return nil, err
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	return store.Create(ctx, &models.Administrator{Email: req.Email, Secret: req.Secret, Role: role})
}
