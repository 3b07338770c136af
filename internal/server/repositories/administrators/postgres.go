package administrators

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/motorpool/internal/common"
	"github.com/dmitrijs2005/motorpool/internal/dbx"
	"github.com/dmitrijs2005/motorpool/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAdministrator(row scanner) (*models.Administrator, error) {
	var (
		admin models.Administrator
		role  string
	)

	if err := row.Scan(&admin.ID, &admin.Email, &admin.Secret, &role); err != nil {
		return nil, err
	}

	r, err := models.ParseRole(role)
	if err != nil {
		return nil, err
	}
	admin.Role = r

	return &admin, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.Administrator, error) {
	admin, err := scanAdministrator(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return admin, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Administrator, error) {
	query :=
		`SELECT id, email, secret, role FROM administrators
		 WHERE id = $1
		 `
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) LockByID(ctx context.Context, id int64) (*models.Administrator, error) {
	query :=
		`SELECT id, email, secret, role FROM administrators
		 WHERE id = $1
		 FOR UPDATE
		 `
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) FindByCredentials(ctx context.Context, email, secret string) (*models.Administrator, error) {
	query :=
		`SELECT id, email, secret, role FROM administrators
		 WHERE email = $1 AND secret = $2
		 ORDER BY id
		 LIMIT 1
		 `
	return r.getOne(ctx, query, email, secret)
}

func (r *PostgresRepository) List(ctx context.Context, page int) ([]models.Administrator, error) {
	query, args, err := sq.Select("id", "email", "secret", "role").
		From("administrators").
		OrderBy("id").
		Limit(uint64(common.PageSize)).
		Offset(uint64(common.PageOffset(page))).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Administrator, 0, common.PageSize)
	for rows.Next() {
		admin, err := scanAdministrator(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *admin)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, admin *models.Administrator) (*models.Administrator, error) {
	query :=
		`INSERT INTO administrators (email, secret, role)
		 VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, admin.Email, admin.Secret, admin.Role.String()).Scan(&admin.ID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return admin, nil
}

func (r *PostgresRepository) Update(ctx context.Context, admin *models.Administrator) error {
	query :=
		`UPDATE administrators SET email = $1, secret = $2, role = $3
		 WHERE id = $4
		 `

	res, err := r.db.ExecContext(ctx, query, admin.Email, admin.Secret, admin.Role.String(), admin.ID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return requireOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM administrators WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
