package validator

import (
	"fmt"

	"github.com/arnavshah/schedule-validator-go/pkg/models"
)

// checkHoursLimits flags employees whose paid hours for the week exceed
// their personal weekly maximum.
func checkHoursLimits(in *Inputs) []models.Issue {
	var issues []models.Issue
	byEmployee := in.shiftsByEmployee()

	for _, emp := range in.Employees {
		shifts := byEmployee[emp.ID]
		if len(shifts) == 0 || emp.MaxWeeklyHours <= 0 {
			continue
		}
		var total float64
		for _, s := range shifts {
			total += PaidHours(s.Start, s.End)
		}
		if total > emp.MaxWeeklyHours {
			issues = append(issues, models.Issue{
				Severity: models.SeverityError,
				Category: models.CategoryHours,
				Message: fmt.Sprintf("%s is scheduled for %.1f paid hours, over their %.1f hour weekly limit",
					emp.Name, total, emp.MaxWeeklyHours),
			})
		}
	}
	return issues
}

// checkRoleCoverage flags roles whose total scheduled paid hours fall below
// the configured weekly minimum for that role.
func checkRoleCoverage(in *Inputs) []models.Issue {
	var issues []models.Issue
	byID := in.employeeByID()

	for _, req := range in.Requirements {
		if req.MinWeeklyHours <= 0 {
			continue
		}
		var total float64
		for _, s := range in.Shifts {
			emp, ok := byID[s.EmployeeID]
			if !ok || !emp.Schedulable() {
				continue
			}
			if emp.Role() == req.JobCode {
				total += PaidHours(s.Start, s.End)
			}
		}
		if total < req.MinWeeklyHours {
			issues = append(issues, models.Issue{
				Severity: models.SeverityWarning,
				Category: models.CategoryHours,
				Message: fmt.Sprintf("%s has %.1f of %.1f required weekly hours scheduled",
					roleLabel(req.JobCode), total, req.MinWeeklyHours),
			})
		}
	}
	return issues
}

// roleLabel renders a canonical job code for messages.
func roleLabel(code models.JobCode) string {
	switch code {
	case models.JobStoreManager:
		return "Store manager"
	case models.JobAssistantManager:
		return "Assistant manager"
	case models.JobTeamLead:
		return "Team lead"
	case models.JobCashier:
		return "Cashier"
	case models.JobApparelProcessor:
		return "Apparel processor"
	case models.JobDonationPricer:
		return "Donation pricer"
	case models.JobDonationGreeter:
		return "Donation greeter"
	default:
		return string(code)
	}
}
