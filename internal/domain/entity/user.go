// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// UserAccount is a registered account in the system. Accounts are the one
// collection that must survive local schema migrations: losing them would lock
// every worker out of the app while offline.
type UserAccount struct {
	ID          string       `json:"id"`                    // Unique identifier, assigned at registration and immutable afterwards.
	Name        string       `json:"name"`                  // Display name shown across the app.
	Role        Role         `json:"role"`                  // One of the fixed role enumeration.
	Phone       string       `json:"phone"`                 // Contact phone number.
	Village     string       `json:"village"`               // Location attributes; empty for facility-bound roles.
	Block       string       `json:"block"`                 //
	District    string       `json:"district"`              //
	State       string       `json:"state"`                 //
	FacilityID  string       `json:"facilityId"`            // The facility this account is attached to.
	Secret      string       `json:"secret"`                // bcrypt hash of the login secret. Never stored in plaintext.
	Performance *Performance `json:"performance,omitempty"` // Optional field-work performance metrics.
}

// Performance holds monthly field-work metrics for a community health worker.
type Performance struct {
	MonthlyTarget int `json:"monthlyTarget"` // Visits planned for the month.
	Achieved      int `json:"achieved"`      // Visits completed.
	Efficiency    int `json:"efficiency"`    // Achieved over target, as a whole percentage.
}

// Clone returns a deep copy so callers cannot mutate repository state through
// shared pointers.
func (u UserAccount) Clone() UserAccount {
	out := u
	if u.Performance != nil {
		perf := *u.Performance
		out.Performance = &perf
	}

	return out
}
