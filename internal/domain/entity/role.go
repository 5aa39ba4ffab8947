// Package entity contains the core business objects of the project.
package entity

// Role represents the fixed set of account roles known to the system.
type Role string

const (
	// RoleCommunityHealthWorker is the field worker who owns patient registrations.
	RoleCommunityHealthWorker Role = "chw"
	// RoleFacilityDoctor is a doctor attached to a health facility.
	RoleFacilityDoctor Role = "facility_doctor"
	// RoleFacilityNurse is a nurse attached to a health facility.
	RoleFacilityNurse Role = "facility_nurse"
	// RoleFacilityAdmin administers one or more facilities.
	RoleFacilityAdmin Role = "facility_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCommunityHealthWorker, RoleFacilityDoctor, RoleFacilityNurse, RoleFacilityAdmin:
		return true
	default:
		return false
	}
}
