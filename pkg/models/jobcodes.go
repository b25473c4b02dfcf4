package models

import "strings"

// JobCode is the canonical role category a raw job title maps to.
type JobCode string

const (
	JobStoreManager     JobCode = "store_manager"
	JobAssistantManager JobCode = "assistant_manager"
	JobTeamLead         JobCode = "team_lead"
	JobCashier          JobCode = "cashier"
	JobApparelProcessor JobCode = "apparel_processor"
	JobDonationPricer   JobCode = "donation_pricer"
	JobDonationGreeter  JobCode = "donation_greeter"
	JobUnknown          JobCode = "unknown"
)

// ManagerCodes are the job codes that count as management for coverage and
// remediation purposes.
var ManagerCodes = []JobCode{JobStoreManager, JobAssistantManager, JobTeamLead}

// IsManager reports whether the code belongs to the manager category.
func IsManager(code JobCode) bool {
	for _, m := range ManagerCodes {
		if code == m {
			return true
		}
	}
	return false
}

// CanonicalJobCode maps a free-form job title to its canonical code.
// Matching is case-insensitive and keyed on the words HR actually uses in
// titles ("Asst Manager", "Donation Door Attendant", etc).
func CanonicalJobCode(title string) JobCode {
	t := strings.ToLower(strings.TrimSpace(title))
	switch {
	case t == "":
		return JobUnknown
	case strings.Contains(t, "store manager") || strings.Contains(t, "general manager"):
		return JobStoreManager
	case strings.Contains(t, "assistant manager") || strings.Contains(t, "asst manager") ||
		strings.Contains(t, "asst. manager"):
		return JobAssistantManager
	case strings.Contains(t, "team lead") || strings.Contains(t, "shift lead") ||
		strings.Contains(t, "supervisor"):
		return JobTeamLead
	case strings.Contains(t, "cashier") || strings.Contains(t, "register"):
		return JobCashier
	case strings.Contains(t, "apparel") || strings.Contains(t, "textile"):
		return JobApparelProcessor
	case strings.Contains(t, "pricer") || strings.Contains(t, "pricing"):
		return JobDonationPricer
	case strings.Contains(t, "greeter") || strings.Contains(t, "donation door") ||
		strings.Contains(t, "door attendant"):
		return JobDonationGreeter
	case strings.Contains(t, "manager"):
		// Unqualified "manager" titles count as store management.
		return JobStoreManager
	default:
		return JobUnknown
	}
}
