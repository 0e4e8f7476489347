package models

import "time"

// CompulsoryNotification is published for consultations with a syphilis
// CID so the SINAN notification form can be prepared out of band.
type CompulsoryNotification struct {
	ConsultationID string    `json:"consultation_id"`
	PatientID      string    `json:"patient_id"`
	PatientName    string    `json:"patient_name"`
	SusNumber      string    `json:"sus_number"`
	DoctorID       string    `json:"doctor_id"`
	CID            string    `json:"cid"`
	Description    string    `json:"description"`
	ConsultedAt    string    `json:"consulted_at"`
	PublishedAt    time.Time `json:"published_at"`
}
