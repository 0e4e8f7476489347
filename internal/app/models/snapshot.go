package models

import "time"

// Snapshot is the full record set written to object storage before a reset.
type Snapshot struct {
	TakenAt       time.Time      `json:"taken_at"`
	Users         []User         `json:"users"`
	Patients      []Patient      `json:"patients"`
	Consultations []Consultation `json:"consultations"`
}
