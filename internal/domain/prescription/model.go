// Package prescription records what a doctor prescribed at a visit.
// Writing a prescription completes the appointment it belongs to.
package prescription

import (
	"time"

	"github.com/google/uuid"
)

// Medicine is one line of a prescription.
type Medicine struct {
	Name     string `json:"name"`
	Dosage   string `json:"dosage"`
	Duration string `json:"duration,omitempty"`
}

// Prescription is the stored record. Medicines serialize as a JSON
// document inside a single column.
type Prescription struct {
	ID            uuid.UUID  `json:"id"`
	AppointmentID uuid.UUID  `json:"appointment_id"`
	DoctorID      uuid.UUID  `json:"doctor_id"`
	Diagnosis     string     `json:"diagnosis,omitempty"`
	Medicines     []Medicine `json:"medicines"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Detail is a prescription joined with its visit and patient context, the
// shape both the admin console and patient history render.
type Detail struct {
	Prescription
	DoctorName    string `json:"doctor_name"`
	VisitDate     string `json:"visit_date"`
	SlotTime      string `json:"slot_time"`
	PatientName   string `json:"patient_name"`
	PatientAge    int    `json:"patient_age,omitempty"`
	PatientGender string `json:"patient_gender,omitempty"`
}
