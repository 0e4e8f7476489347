package models

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RoleNurse   Role = "nurse"
	RoleManager Role = "manager"
)

func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RoleDoctor:
		return "Médico"
	case RoleNurse:
		return "Enfermeiro"
	case RoleManager:
		return "Gerente"
	default:
		return string(r)
	}
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleManager:
		return true
	}
	return false
}

// HasManagerPrivileges is true for roles that administer staff and the
// system settings.
func (r Role) HasManagerPrivileges() bool {
	return r == RoleManager || r == RoleAdmin
}
