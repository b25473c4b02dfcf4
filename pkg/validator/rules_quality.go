package validator

import (
	"fmt"
	"sort"

	"github.com/arnavshah/schedule-validator-go/pkg/models"
)

// Clopening thresholds: a close ending at or after lateCloseClock followed by
// an open starting in the earlyOpen hour window on the very next calendar day.
const (
	lateCloseClock   = "19:30"
	earlyOpenFirstHr = 8
	earlyOpenLastHr  = 9
)

// checkClopenings flags close-then-open pairs on adjacent calendar days for
// the same employee. The gap is measured in calendar days, not elapsed hours,
// so a Friday close followed by a Sunday open never trips the rule.
func checkClopenings(in *Inputs) []models.Issue {
	var issues []models.Issue
	byEmployee := in.shiftsByEmployee()

	for _, emp := range in.Employees {
		shifts := byEmployee[emp.ID]
		for i := 0; i+1 < len(shifts); i++ {
			earlier, later := shifts[i], shifts[i+1]

			endClock := in.Clock.ClockOf(earlier.End)
			if endClock < lateCloseClock {
				continue
			}
			startHr := in.Clock.HourOf(later.Start)
			if startHr < earlyOpenFirstHr || startHr > earlyOpenLastHr {
				continue
			}
			dayA := in.Clock.DateOf(earlier.Start)
			dayB := in.Clock.DateOf(later.Start)
			gap, err := in.Clock.DaysBetween(dayA, dayB)
			if err != nil || gap != 1 {
				continue
			}
			issues = append(issues, models.Issue{
				Severity: models.SeverityWarning,
				Category: models.CategoryQuality,
				Message: fmt.Sprintf("%s closes on %s and opens on %s",
					emp.Name, dayA, dayB),
			})
		}
	}
	return issues
}

// checkShiftVariety recommends mixing shift types for donation greeters who
// work nothing but openers or nothing but closers all week.
func checkShiftVariety(in *Inputs) []models.Issue {
	var issues []models.Issue
	byEmployee := in.shiftsByEmployee()

	for _, emp := range in.Employees {
		if !emp.Schedulable() || emp.Role() != models.JobDonationGreeter {
			continue
		}
		shifts := byEmployee[emp.ID]
		if len(shifts) < 2 {
			continue
		}
		var openers, closers, other int
		for _, s := range shifts {
			switch MatchSlot(in.Clock, s, in.Settings) {
			case models.SlotOpener:
				openers++
			case models.SlotCloser:
				closers++
			default:
				other++
			}
		}
		allOpeners := openers >= 2 && closers == 0
		allClosers := closers >= 2 && openers == 0
		if other == 0 && (allOpeners || allClosers) {
			kind := "opening"
			if allClosers {
				kind = "closing"
			}
			issues = append(issues, models.Issue{
				Severity: models.SeverityWarning,
				Category: models.CategoryQuality,
				Message: fmt.Sprintf("%s only has %s shifts this week; consider mixing in other slots",
					emp.Name, kind),
			})
		}
	}
	return issues
}

// managerCloseCap is the most closing shifts a manager should carry per week.
const managerCloseCap = 3

// checkManagerClosingCap warns when one manager is absorbing too many closes.
func checkManagerClosingCap(in *Inputs) []models.Issue {
	var issues []models.Issue
	byEmployee := in.shiftsByEmployee()

	for _, emp := range in.Employees {
		if !emp.Schedulable() || !models.IsManager(emp.Role()) {
			continue
		}
		closes := 0
		for _, s := range byEmployee[emp.ID] {
			if MatchSlot(in.Clock, s, in.Settings) == models.SlotCloser {
				closes++
			}
		}
		if closes > managerCloseCap {
			issues = append(issues, models.Issue{
				Severity: models.SeverityWarning,
				Category: models.CategoryQuality,
				Message: fmt.Sprintf("%s is closing %d times this week (cap %d)",
					emp.Name, closes, managerCloseCap),
			})
		}
	}
	return issues
}

// maxConsecutiveDays is the longest acceptable run of worked days.
const maxConsecutiveDays = 5

// checkConsecutiveDays scans each employee's worked dates across the
// evaluated week and the previous week for runs of adjacent calendar days.
// The lookback exists because a streak that started last week is invisible
// to a single-week scan.
func checkConsecutiveDays(in *Inputs) []models.Issue {
	var issues []models.Issue

	weekEnd, err := in.Clock.AddDays(in.WeekStart, 6)
	if err != nil {
		return nil
	}

	worked := make(map[string]map[string]bool) // employee -> date set
	record := func(shifts []models.Shift) {
		for _, s := range shifts {
			if worked[s.EmployeeID] == nil {
				worked[s.EmployeeID] = make(map[string]bool)
			}
			worked[s.EmployeeID][in.Clock.DateOf(s.Start)] = true
		}
	}
	record(in.PreviousShifts)
	record(in.Shifts)

	for _, emp := range in.Employees {
		dateSet := worked[emp.ID]
		if len(dateSet) <= maxConsecutiveDays {
			continue
		}
		dates := make([]string, 0, len(dateSet))
		for d := range dateSet {
			dates = append(dates, d)
		}
		sort.Strings(dates)

		bestLen, bestStart, bestEnd := 1, dates[0], dates[0]
		runLen, runStart := 1, dates[0]
		for i := 1; i < len(dates); i++ {
			gap, err := in.Clock.DaysBetween(dates[i-1], dates[i])
			if err == nil && gap == 1 {
				runLen++
			} else {
				runLen, runStart = 1, dates[i]
			}
			if runLen > bestLen {
				bestLen, bestStart, bestEnd = runLen, runStart, dates[i]
			}
		}

		// Only report streaks that touch the evaluated week.
		if bestLen > maxConsecutiveDays && bestEnd >= in.WeekStart && bestStart <= weekEnd {
			issues = append(issues, models.Issue{
				Severity: models.SeverityWarning,
				Category: models.CategoryQuality,
				Message: fmt.Sprintf("%s works %d consecutive days (%s through %s)",
					emp.Name, bestLen, bestStart, bestEnd),
			})
		}
	}
	return issues
}
