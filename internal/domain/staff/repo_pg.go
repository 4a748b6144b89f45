package staff

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const staffCols = `id, username, password, name, degree, role, created_at`

func (r *repoPG) scanStaff(row pgx.Row) (*Staff, error) {
	var s Staff
	err := row.Scan(&s.ID, &s.Username, &s.Password, &s.Name, &s.Degree, &s.Role, &s.CreatedAt)
	return &s, err
}

func (r *repoPG) Create(ctx context.Context, s *Staff) error {
	s.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO staff (id, username, password, name, degree, role)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.Username, s.Password, s.Name, s.Degree, s.Role)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Staff, error) {
	return r.scanStaff(r.pool.QueryRow(ctx,
		`SELECT `+staffCols+` FROM staff WHERE id = $1`, id))
}

func (r *repoPG) GetByUsername(ctx context.Context, username string) (*Staff, error) {
	return r.scanStaff(r.pool.QueryRow(ctx,
		`SELECT `+staffCols+` FROM staff WHERE username = $1`, username))
}

func (r *repoPG) ListByRole(ctx context.Context, role string) ([]*Staff, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+staffCols+` FROM staff WHERE role = $1 ORDER BY name ASC`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *repoPG) List(ctx context.Context) ([]*Staff, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+staffCols+` FROM staff ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *repoPG) collect(rows pgx.Rows) ([]*Staff, error) {
	var items []*Staff
	for rows.Next() {
		s, err := r.scanStaff(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	return err
}
