package scheduling

import (
	"campus-venue-booking/internal/data/entity"
)

// Action is a governed transition or capability.
type Action string

const (
	ActionSubmit      Action = "submit"
	ActionApprove     Action = "approve"
	ActionReject      Action = "reject"
	ActionManageVenue Action = "manage-venue"
	ActionSetPriority Action = "set-priority"
)

// policy is the single authorization table consulted before any
// transition. Role checks live here, nowhere else.
var policy = map[Action][]entity.Role{
	ActionSubmit:      {entity.RoleStudent, entity.RoleFaculty, entity.RoleAdmin},
	ActionApprove:     {entity.RoleFaculty, entity.RoleAdmin},
	ActionReject:      {entity.RoleFaculty, entity.RoleAdmin},
	ActionManageVenue: {entity.RoleAdmin},
	ActionSetPriority: {entity.RoleFaculty, entity.RoleAdmin},
}

// Allowed reports whether role may perform action.
func Allowed(role entity.Role, action Action) bool {
	for _, r := range policy[action] {
		if r == role {
			return true
		}
	}
	return false
}
