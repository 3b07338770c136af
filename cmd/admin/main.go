// Command admin provisions an administrator in the PostgreSQL store.
//
//	admin -d postgres://... -email ops@example.com -role Admin
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dmitrijs2005/motorpool/internal/admincli"
	"github.com/dmitrijs2005/motorpool/internal/logging"
	"github.com/dmitrijs2005/motorpool/internal/server/config"
	"github.com/dmitrijs2005/motorpool/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/motorpool/internal/server/services"
	"github.com/dmitrijs2005/motorpool/internal/server/validation"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	if cfg.InMemory() {
		return errors.New("the in-memory store lives inside the server process; point -d at PostgreSQL")
	}

	opts, err := admincli.ParseArgs(args)
	if err != nil {
		return err
	}

	log, flush, err := logging.New(cfg.LogFormat)
	if err != nil {
		return err
	}
	defer flush()

	db, err := repomanager.Open(ctx, cfg.DatabaseDSN, cfg.DBConnectRetries, cfg.DBConnectMaxDelay, log)
	if err != nil {
		return err
	}
	defer db.Close()

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	svc := services.NewAdministratorService(db, m, log)
	admin, err := admincli.Provision(ctx, admincli.NewPrompter(os.Stdin, os.Stdout), validation.New(), svc, opts)
	if err != nil {
		var verr *validation.Errors
		if errors.As(err, &verr) {
			return errors.New(strings.Join(verr.Messages, "\n"))
		}
		return err
	}

	fmt.Printf("Administrador %d criado (%s, %s)\n", admin.ID, admin.Email, admin.Role)
	return nil
}
