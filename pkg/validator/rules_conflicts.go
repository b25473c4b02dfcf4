package validator

import (
	"fmt"

	"github.com/arnavshah/schedule-validator-go/pkg/models"
)

// checkTimeOffConflicts flags shifts that land on a day the employee has
// approved time off. Pending and denied requests are ignored.
func checkTimeOffConflicts(in *Inputs) []models.Issue {
	var issues []models.Issue
	byID := in.employeeByID()

	approved := make(map[string]map[string]bool) // employee -> date set
	for _, req := range in.TimeOff {
		if !req.Approved() {
			continue
		}
		if approved[req.EmployeeID] == nil {
			approved[req.EmployeeID] = make(map[string]bool)
		}
		approved[req.EmployeeID][req.Date] = true
	}

	for _, s := range in.Shifts {
		emp, ok := byID[s.EmployeeID]
		if !ok {
			continue
		}
		date := in.Clock.DateOf(s.Start)
		if approved[s.EmployeeID][date] {
			issues = append(issues, models.Issue{
				Severity: models.SeverityError,
				Category: models.CategoryConflicts,
				Message: fmt.Sprintf("%s is scheduled during approved time off on %s",
					emp.Name, date),
			})
		}
	}
	return issues
}

// checkHolidays flags anyone scheduled on a store-closed holiday. One error
// per affected employee per holiday, no matter how many shifts they hold
// that day.
func checkHolidays(in *Inputs) []models.Issue {
	var issues []models.Issue
	byID := in.employeeByID()

	for _, date := range in.weekDates() {
		name, holiday := in.isHoliday(date)
		if !holiday {
			continue
		}
		seen := make(map[string]bool)
		for _, s := range in.shiftsOn(date) {
			emp, ok := byID[s.EmployeeID]
			if !ok || seen[emp.ID] {
				continue
			}
			seen[emp.ID] = true
			issues = append(issues, models.Issue{
				Severity: models.SeverityError,
				Category: models.CategoryConflicts,
				Message: fmt.Sprintf("%s is scheduled on %s (%s), but the store is closed",
					emp.Name, name, date),
			})
		}
	}
	return issues
}
