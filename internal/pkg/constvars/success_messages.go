package constvars

const (
	LoginSuccessMessage          = "login successful"
	LogoutSuccessMessage         = "logout successful"
	GetSessionUserSuccessMessage = "session user retrieved"
)

const (
	CreatePatientSuccessMessage     = "patient created"
	UpdatePatientSuccessMessage     = "patient updated"
	DeletePatientSuccessMessage     = "patient deleted"
	GetPatientsSuccessMessage       = "patients retrieved"
	GetPatientSuccessMessage        = "patient retrieved"
	GetPatientPathwaySuccessMessage = "suggested pathway retrieved"
)

const (
	CreateStaffSuccessMessage       = "staff member created"
	UpdateStaffSuccessMessage       = "staff member updated"
	DeleteStaffSuccessMessage       = "staff member deleted"
	GetStaffSuccessMessage          = "staff retrieved"
	GetCreatableRolesSuccessMessage = "creatable roles retrieved"
)

const (
	EvaluateProtocolSuccessMessage     = "protocol evaluated"
	ApplyProtocolSuccessMessage        = "protocol applied to consultation draft"
	GetProtocolReferenceSuccessMessage = "protocol reference retrieved"
)

const (
	CreateConsultationSuccessMessage = "consultation registered"
	GetConsultationsSuccessMessage   = "consultations retrieved"
	GetConsultationSuccessMessage    = "consultation retrieved"
	GetPrescriptionsSuccessMessage   = "prescriptions retrieved"
	GetPrescriptionSuccessMessage    = "prescription retrieved"
)

const (
	GetDashboardSuccessMessage = "dashboard retrieved"
	ResetSystemSuccessMessage  = "system reset completed"
	SnapshotSuccessMessage     = "snapshot uploaded"
)
