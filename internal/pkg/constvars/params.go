package constvars

const (
	URLParamUserID         = "user_id"
	URLParamPatientID      = "patient_id"
	URLParamConsultationID = "consultation_id"
)
