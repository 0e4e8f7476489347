package users

import "proacolhe-service/internal/app/models"

// CreatableRoles lists the roles an actor may assign to new or edited staff.
func CreatableRoles(actor models.Role) []models.Role {
	switch {
	case actor.HasManagerPrivileges():
		return []models.Role{models.RoleManager, models.RoleDoctor, models.RoleNurse}
	case actor == models.RoleDoctor:
		return []models.Role{models.RoleNurse}
	default:
		return []models.Role{}
	}
}

func canAssignRole(actor, role models.Role) bool {
	for _, creatable := range CreatableRoles(actor) {
		if creatable == role {
			return true
		}
	}
	return false
}

// CanEditUser: everyone edits themselves, managers edit anyone and doctors
// edit nurses.
func CanEditUser(actor *models.Session, target *models.User) bool {
	if actor.UserID == target.ID {
		return true
	}
	if actor.Role.HasManagerPrivileges() {
		return true
	}
	if actor.Role == models.RoleDoctor {
		return target.Role == models.RoleNurse
	}
	return false
}

func CanDeleteUser(actor *models.Session, target *models.User) bool {
	return actor.Role.HasManagerPrivileges() &&
		target.Role != models.RoleManager &&
		target.ID != actor.UserID
}
