package requests

// Password is enforced by the staff usecase on creation so the client gets
// a dedicated message instead of a generic "is required".
type CreateStaff struct {
	Name      string `json:"name" validate:"required,max=120"`
	SusNumber string `json:"sus_number" validate:"omitempty,sus_number"`
	Role      string `json:"role" validate:"required,role"`
	Username  string `json:"username" validate:"required,max=64,username"`
	Password  string `json:"password" validate:"omitempty,password"`
}

type UpdateStaff struct {
	UserID    string `json:"-" validate:"required"`
	Name      string `json:"name" validate:"required,max=120"`
	SusNumber string `json:"sus_number" validate:"omitempty,sus_number"`
	Role      string `json:"role" validate:"required,role"`
	Username  string `json:"username" validate:"required,max=64,username"`
	Password  string `json:"password" validate:"omitempty,password"`
}
