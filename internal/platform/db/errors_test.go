package db

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "appointments_doctor_id_date_slot_time_key"}
	if !IsUniqueViolation(pgErr) {
		t.Error("expected unique violation to be detected")
	}

	wrapped := fmt.Errorf("insert appointment: %w", pgErr)
	if !IsUniqueViolation(wrapped) {
		t.Error("expected wrapped unique violation to be detected")
	}

	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation must not count as unique violation")
	}
	if IsUniqueViolation(fmt.Errorf("plain error")) {
		t.Error("plain error must not count as unique violation")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(pgx.ErrNoRows) {
		t.Error("expected pgx.ErrNoRows to be not found")
	}
	if !IsNotFound(fmt.Errorf("get patient: %w", pgx.ErrNoRows)) {
		t.Error("expected wrapped pgx.ErrNoRows to be not found")
	}
	if IsNotFound(fmt.Errorf("boom")) {
		t.Error("plain error must not count as not found")
	}
}
