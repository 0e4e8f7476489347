package responses

import "time"

type Login struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      StaffMember `json:"user"`
}
