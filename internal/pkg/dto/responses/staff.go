package responses

type StaffMember struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SusNumber string `json:"sus_number"`
	Role      string `json:"role"`
	RoleLabel string `json:"role_label"`
	Username  string `json:"username"`
	CanEdit   bool   `json:"can_edit"`
	CanDelete bool   `json:"can_delete"`
}

type RoleOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
