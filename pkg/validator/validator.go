package validator

import (
	"sort"

	"github.com/arnavshah/schedule-validator-go/pkg/civiltime"
	"github.com/arnavshah/schedule-validator-go/pkg/models"
)

// HolidayLookup answers whether a date is a store-closed holiday and, if so,
// what it is called. Owned externally; the engine treats it as an oracle.
type HolidayLookup func(date string) (string, bool)

// Inputs is one immutable snapshot of everything the evaluators read. The
// engine never mutates it, so running the same snapshot twice yields
// identical issue lists.
type Inputs struct {
	Clock     *civiltime.Resolver
	WeekStart string // Sunday, yyyy-MM-dd in business time

	Employees      []models.Employee
	Shifts         []models.Shift
	PreviousShifts []models.Shift
	Requirements   []models.RoleRequirement
	Settings       models.GlobalSettings
	TimeOff        []models.TimeOffRequest
	Holidays       HolidayLookup
}

// Evaluator is one independent schedule rule: a pure function from the
// snapshot to zero or more issues.
type Evaluator func(in *Inputs) []models.Issue

// evaluators runs in this fixed order; the order determines issue display
// order and nothing else.
var evaluators = []Evaluator{
	checkHoursLimits,
	checkRoleCoverage,
	checkDailyStaffing,
	checkTimeOffConflicts,
	checkClopenings,
	checkShiftVariety,
	checkManagerClosingCap,
	checkHolidays,
	checkConsecutiveDays,
}

// Validate runs every rule evaluator over the snapshot and concatenates their
// issues in evaluator order. It never fails: malformed rows (orphaned shifts,
// unknown employees) are skipped by the individual checks.
func Validate(in *Inputs) []models.Issue {
	issues := make([]models.Issue, 0)
	for _, eval := range evaluators {
		issues = append(issues, eval(in)...)
	}
	return issues
}

// CountByCategory tallies issues per category for the response payload.
func CountByCategory(issues []models.Issue) map[models.Category]int {
	counts := make(map[models.Category]int)
	for _, is := range issues {
		counts[is.Category]++
	}
	return counts
}

// employeeByID indexes the roster. Every lookup through this map treats a
// miss as "orphaned shift, skip".
func (in *Inputs) employeeByID() map[string]models.Employee {
	m := make(map[string]models.Employee, len(in.Employees))
	for _, e := range in.Employees {
		m[e.ID] = e
	}
	return m
}

// weekDates returns the seven calendar dates of the evaluated week.
func (in *Inputs) weekDates() []string {
	dates := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		d, err := in.Clock.AddDays(in.WeekStart, i)
		if err != nil {
			return dates
		}
		dates = append(dates, d)
	}
	return dates
}

// shiftsOn returns the week's shifts starting on the given business date.
func (in *Inputs) shiftsOn(date string) []models.Shift {
	var out []models.Shift
	for _, s := range in.Shifts {
		if in.Clock.DateOf(s.Start) == date {
			out = append(out, s)
		}
	}
	return out
}

// shiftsByEmployee groups the week's shifts by owner, each group sorted by
// start time.
func (in *Inputs) shiftsByEmployee() map[string][]models.Shift {
	m := make(map[string][]models.Shift)
	for _, s := range in.Shifts {
		m[s.EmployeeID] = append(m[s.EmployeeID], s)
	}
	for id := range m {
		sh := m[id]
		sort.Slice(sh, func(i, j int) bool { return sh[i].Start.Before(sh[j].Start) })
		m[id] = sh
	}
	return m
}

// isHoliday consults the lookup, tolerating a nil oracle.
func (in *Inputs) isHoliday(date string) (string, bool) {
	if in.Holidays == nil {
		return "", false
	}
	return in.Holidays(date)
}
