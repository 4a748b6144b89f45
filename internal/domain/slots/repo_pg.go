package slots

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const slotCols = `id, doctor_id, slot_time, created_at`

func (r *repoPG) scanSlot(row pgx.Row) (*MasterSlot, error) {
	var s MasterSlot
	err := row.Scan(&s.ID, &s.DoctorID, &s.SlotTime, &s.CreatedAt)
	return &s, err
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*MasterSlot, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+slotCols+` FROM master_slots WHERE doctor_id = $1 ORDER BY slot_time ASC`,
		doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MasterSlot
	for rows.Next() {
		s, err := r.scanSlot(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *repoPG) Add(ctx context.Context, slot *MasterSlot) error {
	slot.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO master_slots (id, doctor_id, slot_time)
		VALUES ($1, $2, $3)`,
		slot.ID, slot.DoctorID, slot.SlotTime)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM master_slots WHERE id = $1`, id)
	return err
}

func (r *repoPG) Reset(ctx context.Context, doctorID uuid.UUID, times []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM master_slots WHERE doctor_id = $1`, doctorID); err != nil {
		return fmt.Errorf("clear template: %w", err)
	}
	for _, t := range times {
		if _, err := tx.Exec(ctx, `
			INSERT INTO master_slots (id, doctor_id, slot_time)
			VALUES ($1, $2, $3)`,
			uuid.New(), doctorID, t); err != nil {
			return fmt.Errorf("insert slot %s: %w", t, err)
		}
	}
	return tx.Commit(ctx)
}
