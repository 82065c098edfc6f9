package models

type UserRole string

const (
	UserRoleHR              UserRole = "HR_ROLE"
	UserRoleManagement      UserRole = "MANAGEMENT_ROLE"
	UserRoleFacilityManager UserRole = "FACILITY_MANAGER_ROLE"
	UserRoleCEO             UserRole = "CEO_ROLE"
)

var roleHumanName = map[UserRole]string{
	UserRoleHR:              "HR Staff",
	UserRoleManagement:      "Management",
	UserRoleFacilityManager: "Facility Manager",
	UserRoleCEO:             "CEO",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

// IsApprover reports whether the role takes part in the offer approval chain.
func (r UserRole) IsApprover() bool {
	return r == UserRoleManagement || r == UserRoleFacilityManager || r == UserRoleCEO
}

const SystemUser = "System"
