package requests

type CreatePatient struct {
	Name      string `json:"name" validate:"required,max=120"`
	SusNumber string `json:"sus_number" validate:"required,sus_number"`
	BirthDate string `json:"birth_date" validate:"required,date,not_future_date"`
}

type UpdatePatient struct {
	PatientID string `json:"-" validate:"required"`
	Name      string `json:"name" validate:"required,max=120"`
	SusNumber string `json:"sus_number" validate:"required,sus_number"`
	BirthDate string `json:"birth_date" validate:"required,date,not_future_date"`
}
