package entity

// StaffStatus is the operational status of a staff member.
type StaffStatus string

const (
	// StaffStatusActive means the member is on duty.
	StaffStatusActive StaffStatus = "active"
	// StaffStatusOnLeave means the member is temporarily away.
	StaffStatusOnLeave StaffStatus = "on_leave"
	// StaffStatusInactive means the member no longer serves the facility.
	StaffStatusInactive StaffStatus = "inactive"
)

// String returns the string representation of the StaffStatus.
func (s StaffStatus) String() string {
	return string(s)
}

// IsValid checks if the StaffStatus is a valid value.
func (s StaffStatus) IsValid() bool {
	switch s {
	case StaffStatusActive, StaffStatusOnLeave, StaffStatusInactive:
		return true
	default:
		return false
	}
}

// StaffPerformance holds role-specific performance metrics for display.
type StaffPerformance struct {
	MonthlyTarget      int     `json:"monthlyTarget"`      // Target case load for the month.
	Achieved           int     `json:"achieved"`           // Cases completed.
	Efficiency         float64 `json:"efficiency"`         // Achieved over target, percentage.
	PatientsHandled    int     `json:"patientsHandled"`    // Total patients handled in the period.
	TrainingsCompleted int     `json:"trainingsCompleted"` // Trainings attended.
}

// StaffRecord is a read-model projection of a UserAccount enriched with
// role-specific display attributes. Records are rebuilt from the users
// collection on demand; only manually added entries not tied to any account
// are independently authoritative.
type StaffRecord struct {
	ID                 string            `json:"id"`                    // Matches the UserAccount ID for projected entries.
	Name               string            `json:"name"`                  // Display name.
	Role               Role              `json:"role"`                  // Role enumeration shared with UserAccount.
	Phone              string            `json:"phone"`                 // Contact phone number.
	Email              string            `json:"email"`                 // Contact email, where known.
	Village            string            `json:"village"`               // Location attributes.
	Block              string            `json:"block"`                 //
	District           string            `json:"district"`              //
	State              string            `json:"state"`                 //
	FacilityID         string            `json:"facilityId"`            // Facility the member is attached to.
	FacilityName       string            `json:"facilityName"`          // Human-readable facility name.
	Qualification      string            `json:"qualification"`         // e.g. "MBBS", "GNM".
	Experience         string            `json:"experience"`            // Free-form experience summary.
	Specialization     string            `json:"specialization"`        // Doctor specialization, where applicable.
	Responsibilities   string            `json:"responsibilities"`      // Nurse/worker duty summary.
	AssignedPopulation string            `json:"assignedPopulation"`    // Catchment population for field workers.
	AssignedFamilies   string            `json:"assignedFamilies"`      // Catchment families for field workers.
	JoiningDate        string            `json:"joiningDate"`           // Date of joining, ISO 8601 date string.
	LastTraining       string            `json:"lastTraining"`          // Date of most recent training.
	Status             StaffStatus       `json:"status"`                // Operational status.
	Performance        *StaffPerformance `json:"performance,omitempty"` // Optional performance metrics.
}

// Clone returns a deep copy so callers cannot mutate repository state through
// shared pointers.
func (s StaffRecord) Clone() StaffRecord {
	out := s
	if s.Performance != nil {
		perf := *s.Performance
		out.Performance = &perf
	}

	return out
}

// StaffFromAccount projects a UserAccount into its staff read-model form.
// Projected entries always start active; role-specific display attributes are
// filled in later by facility admins through staff updates.
func StaffFromAccount(account UserAccount) StaffRecord {
	record := StaffRecord{
		ID:         account.ID,
		Name:       account.Name,
		Role:       account.Role,
		Phone:      account.Phone,
		Village:    account.Village,
		Block:      account.Block,
		District:   account.District,
		State:      account.State,
		FacilityID: account.FacilityID,
		Status:     StaffStatusActive,
	}
	if account.Performance != nil {
		record.Performance = &StaffPerformance{
			MonthlyTarget: account.Performance.MonthlyTarget,
			Achieved:      account.Performance.Achieved,
			Efficiency:    float64(account.Performance.Efficiency),
		}
	}

	return record
}
