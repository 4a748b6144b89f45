package portal

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type settingRepoPG struct{ pool *pgxpool.Pool }

func NewSettingRepoPG(pool *pgxpool.Pool) SettingRepository { return &settingRepoPG{pool: pool} }

const settingCols = `key, value, updated_at`

func (r *settingRepoPG) scanSetting(row pgx.Row) (*Setting, error) {
	var s Setting
	err := row.Scan(&s.Key, &s.Value, &s.UpdatedAt)
	return &s, err
}

func (r *settingRepoPG) Get(ctx context.Context, key string) (*Setting, error) {
	return r.scanSetting(r.pool.QueryRow(ctx,
		`SELECT `+settingCols+` FROM settings WHERE key = $1`, key))
}

func (r *settingRepoPG) Upsert(ctx context.Context, key, value string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value)
	return err
}
