package responses

type ResetSystem struct {
	SnapshotObject       string `json:"snapshot_object,omitempty"`
	RemovedPatients      int    `json:"removed_patients"`
	RemovedConsultations int    `json:"removed_consultations"`
	RemovedUsers         int    `json:"removed_users"`
	InitialManagerSeeded bool   `json:"initial_manager_seeded"`
}

type Snapshot struct {
	ObjectName string `json:"object_name"`
}
