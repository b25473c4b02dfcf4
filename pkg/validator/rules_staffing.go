package validator

import (
	"fmt"

	"github.com/arnavshah/schedule-validator-go/pkg/models"
)

// checkDailyStaffing walks each day of the week and verifies the slot
// coverage the store needs to operate: enough openers and closers, a manager
// on each opening and closing slot, one donation greeter and one cashier on
// each, and at least one mid shift. Holiday dates are skipped entirely; a
// closed store is allowed to be empty.
func checkDailyStaffing(in *Inputs) []models.Issue {
	var issues []models.Issue
	byID := in.employeeByID()

	for _, date := range in.weekDates() {
		if _, holiday := in.isHoliday(date); holiday {
			continue
		}

		var openers, closers int
		var managerOpeners, managerClosers int
		var greeterOpeners, greeterClosers int
		var cashierOpeners, cashierClosers int
		var midShifts int

		for _, s := range in.shiftsOn(date) {
			slot := MatchSlot(in.Clock, s, in.Settings)
			switch slot {
			case models.SlotOpener:
				openers++
			case models.SlotCloser:
				closers++
			case models.SlotMid:
				midShifts++
			}
			if slot == models.SlotNone {
				continue
			}

			emp, ok := byID[s.EmployeeID]
			if !ok || !emp.Schedulable() {
				continue
			}
			switch role := emp.Role(); {
			case models.IsManager(role):
				if slot == models.SlotOpener {
					managerOpeners++
				} else if slot == models.SlotCloser {
					managerClosers++
				}
			case role == models.JobDonationGreeter:
				if slot == models.SlotOpener {
					greeterOpeners++
				} else if slot == models.SlotCloser {
					greeterClosers++
				}
			case role == models.JobCashier:
				if slot == models.SlotOpener {
					cashierOpeners++
				} else if slot == models.SlotCloser {
					cashierClosers++
				}
			}
		}

		label := dayLabel(in, date)

		if openers < in.Settings.OpenersRequired {
			issues = append(issues, models.Issue{
				Severity: models.SeverityWarning,
				Category: models.CategoryStaffing,
				Message: fmt.Sprintf("%s: %d/%d openers scheduled",
					label, openers, in.Settings.OpenersRequired),
			})
		}
		if closers < in.Settings.ClosersRequired {
			issues = append(issues, models.Issue{
				Severity: models.SeverityWarning,
				Category: models.CategoryStaffing,
				Message: fmt.Sprintf("%s: %d/%d closers scheduled",
					label, closers, in.Settings.ClosersRequired),
			})
		}

		// A missing manager on an opening or closing slot is safety-critical.
		if managerOpeners < in.Settings.ManagersPerSlot {
			issues = append(issues, models.Issue{
				Severity: models.SeverityError,
				Category: models.CategoryStaffing,
				Message: fmt.Sprintf("%s: %d/%d managers on the opening slot",
					label, managerOpeners, in.Settings.ManagersPerSlot),
			})
		}
		if managerClosers < in.Settings.ManagersPerSlot {
			issues = append(issues, models.Issue{
				Severity: models.SeverityError,
				Category: models.CategoryStaffing,
				Message: fmt.Sprintf("%s: %d/%d managers on the closing slot",
					label, managerClosers, in.Settings.ManagersPerSlot),
			})
		}

		if greeterOpeners == 0 {
			issues = append(issues, slotGapIssue(label, "donation greeter", date,
				models.JobDonationGreeter, models.SlotOpener))
		}
		if greeterClosers == 0 {
			issues = append(issues, slotGapIssue(label, "donation greeter", date,
				models.JobDonationGreeter, models.SlotCloser))
		}
		if cashierOpeners == 0 {
			issues = append(issues, slotGapIssue(label, "cashier", date,
				models.JobCashier, models.SlotOpener))
		}
		if cashierClosers == 0 {
			issues = append(issues, slotGapIssue(label, "cashier", date,
				models.JobCashier, models.SlotCloser))
		}

		if midShifts == 0 {
			issues = append(issues, models.Issue{
				Severity: models.SeverityWarning,
				Category: models.CategoryStaffing,
				Message:  fmt.Sprintf("%s: no mid shift scheduled", label),
			})
		}
	}
	return issues
}

// slotGapIssue builds the error for a missing greeter or cashier slot. These
// gaps have a computable fix, so they carry a remediation descriptor.
func slotGapIssue(label, role, date string, code models.JobCode, slot models.SlotType) models.Issue {
	return models.Issue{
		Severity: models.SeverityError,
		Category: models.CategoryStaffing,
		Message:  fmt.Sprintf("%s: no %s scheduled on the %s slot", label, role, slot),
		Remediation: &models.RemediationDescriptor{
			Day:     date,
			JobCode: code,
			Slot:    slot,
		},
	}
}

// dayLabel renders a date as "Sun 2026-03-01" for messages.
func dayLabel(in *Inputs, date string) string {
	wd, err := in.Clock.WeekdayOf(date)
	if err != nil {
		return date
	}
	return wd.String()[:3] + " " + date
}
