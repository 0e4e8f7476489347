package requests

type ResetSystem struct {
	Confirm bool `json:"confirm" validate:"required"`
}
