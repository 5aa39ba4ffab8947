package entity

import "slices"

// PregnancyStatus classifies a patient's current pregnancy state.
type PregnancyStatus string

const (
	// PregnancyStatusPregnant marks an ongoing pregnancy under follow-up.
	PregnancyStatusPregnant PregnancyStatus = "pregnant"
	// PregnancyStatusDelivered marks a completed pregnancy in postnatal care.
	PregnancyStatusDelivered PregnancyStatus = "delivered"
	// PregnancyStatusNotPregnant marks a registered patient with no active pregnancy.
	PregnancyStatusNotPregnant PregnancyStatus = "not_pregnant"
	// PregnancyStatusOther covers cases outside the main three states.
	PregnancyStatusOther PregnancyStatus = "other"
)

// String returns the string representation of the PregnancyStatus.
func (s PregnancyStatus) String() string {
	return string(s)
}

// IsValid checks if the PregnancyStatus is a valid value.
func (s PregnancyStatus) IsValid() bool {
	switch s {
	case PregnancyStatusPregnant, PregnancyStatusDelivered, PregnancyStatusNotPregnant, PregnancyStatusOther:
		return true
	default:
		return false
	}
}

// Referral is the optional referral sub-record attached to a patient when a
// worker escalates the case to a facility doctor.
type Referral struct {
	Referred bool   `json:"referred"` // True once a referral has been raised.
	DoctorID string `json:"doctorId"` // The doctor the case was referred to.
	WorkerID string `json:"workerId"` // The worker who raised the referral.
	Date     string `json:"date"`     // Referral date, ISO 8601 date string.
	Status   string `json:"status"`   // Free-form workflow status, e.g. "pending", "seen".
}

// PatientRecord is a patient registered by a community health worker.
// The owning worker and facility links are set at creation; the store does not
// enforce that they reference an existing UserAccount.
type PatientRecord struct {
	ID               string          `json:"id"`                 // Unique identifier within the patients collection.
	Name             string          `json:"name"`               // Patient name.
	HusbandName      string          `json:"husbandName"`        // Spouse name, used for identification in the field.
	Age              int             `json:"age"`                // Age in years.
	Phone            string          `json:"phone"`              // Contact phone number.
	Village          string          `json:"village"`            // Residence attributes.
	Block            string          `json:"block"`              //
	District         string          `json:"district"`           //
	BloodGroup       string          `json:"bloodGroup"`         // Blood group, e.g. "O+".
	LMPDate          string          `json:"lmpDate"`            // Last menstrual period, ISO 8601 date string.
	EDDDate          string          `json:"eddDate"`            // Expected delivery date, ISO 8601 date string.
	PregnancyStatus  PregnancyStatus `json:"pregnancyStatus"`    // Current pregnancy state.
	RiskFactors      []string        `json:"riskFactors"`        // Clinical risk factors recorded during visits.
	HighRisk         bool            `json:"highRisk"`           // Clinical high-risk classification driving priority views.
	WorkerID         string          `json:"workerId"`           // The community health worker who owns this record.
	FacilityID       string          `json:"facilityId"`         // The facility the patient is registered under.
	DoctorID         string          `json:"doctorId"`           // Optional assigned doctor.
	Referral         *Referral       `json:"referral,omitempty"` // Optional referral sub-record.
	RegistrationDate string          `json:"registrationDate"`   // Date the record was created.
	LastVisit        string          `json:"lastVisit"`          // Date of the most recent home visit.
}

// Clone returns a deep copy so callers cannot mutate repository state through
// shared slices or pointers.
func (p PatientRecord) Clone() PatientRecord {
	out := p
	out.RiskFactors = slices.Clone(p.RiskFactors)
	if p.Referral != nil {
		ref := *p.Referral
		out.Referral = &ref
	}

	return out
}
