package patient

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `user_id, name, email, phone, age, gender, address, photo_url, created_at, updated_at`

func (r *repoPG) scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.UserID, &p.Name, &p.Email, &p.Phone, &p.Age,
		&p.Gender, &p.Address, &p.PhotoURL, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Save(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patients (user_id, name, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING`,
		p.UserID, p.Name, p.Email)
	return err
}

func (r *repoPG) Get(ctx context.Context, userID string) (*Patient, error) {
	return r.scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE user_id = $1`, userID))
}

func (r *repoPG) UpdateProfile(ctx context.Context, p *Patient) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE patients
		SET name=$2, phone=$3, age=$4, gender=$5, address=$6, updated_at=NOW()
		WHERE user_id = $1`,
		p.UserID, p.Name, p.Phone, p.Age, p.Gender, p.Address)
	return err
}

func (r *repoPG) UpdatePhoto(ctx context.Context, userID, photoURL string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE patients SET photo_url=$2, updated_at=NOW() WHERE user_id = $1`,
		userID, photoURL)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+patientCols+` FROM patients
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := r.scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
