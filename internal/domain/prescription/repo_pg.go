package prescription

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, p *Prescription) error {
	p.ID = uuid.New()
	medicines, err := json.Marshal(p.Medicines)
	if err != nil {
		return fmt.Errorf("encode medicines: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO prescriptions (id, appointment_id, doctor_id, diagnosis, medicines, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.AppointmentID, p.DoctorID, p.Diagnosis, medicines, p.Notes)
	return err
}

const detailQuery = `
	SELECT p.id, p.appointment_id, p.doctor_id, p.diagnosis, p.medicines, p.notes, p.created_at,
	       s.name, a.date, a.slot_time, a.patient_name,
	       COALESCE(pt.age, 0), COALESCE(pt.gender, '')
	FROM prescriptions p
	JOIN appointments a ON a.id = p.appointment_id
	JOIN staff s ON s.id = p.doctor_id
	LEFT JOIN patients pt ON pt.user_id = a.patient_id`

func (r *repoPG) scanDetail(row pgx.Row) (*Detail, error) {
	var d Detail
	var medicines []byte
	err := row.Scan(&d.ID, &d.AppointmentID, &d.DoctorID, &d.Diagnosis, &medicines, &d.Notes, &d.CreatedAt,
		&d.DoctorName, &d.VisitDate, &d.SlotTime, &d.PatientName,
		&d.PatientAge, &d.PatientGender)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(medicines, &d.Medicines); err != nil {
		return nil, fmt.Errorf("decode medicines: %w", err)
	}
	return &d, nil
}

func (r *repoPG) GetByAppointment(ctx context.Context, appointmentID uuid.UUID) (*Detail, error) {
	return r.scanDetail(r.pool.QueryRow(ctx,
		detailQuery+` WHERE p.appointment_id = $1`, appointmentID))
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID string) ([]*Detail, error) {
	rows, err := r.pool.Query(ctx,
		detailQuery+` WHERE a.patient_id = $1 ORDER BY a.date DESC, a.slot_time DESC`,
		patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Detail
	for rows.Next() {
		d, err := r.scanDetail(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
