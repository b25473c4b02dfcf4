package validator

import (
	"testing"
	"time"

	"github.com/arnavshah/schedule-validator-go/pkg/civiltime"
	"github.com/arnavshah/schedule-validator-go/pkg/models"
	"github.com/stretchr/testify/require"
)

// The test week runs Sunday 2026-03-01 through Saturday 2026-03-07, with the
// previous week ending Saturday 2026-02-28.
const testWeekStart = "2026-03-01"

func testResolver(t *testing.T) *civiltime.Resolver {
	t.Helper()
	r, err := civiltime.NewResolver("America/New_York")
	require.NoError(t, err)
	return r
}

func testSettings() models.GlobalSettings {
	return models.GlobalSettings{
		OpenersRequired:   2,
		ClosersRequired:   2,
		ManagersPerSlot:   1,
		OpenerStart:       "08:30",
		OpenerEnd:         "17:00",
		CloserStart:       "11:30",
		CloserEnd:         "20:00",
		SundayCloserStart: "10:00",
		SundayCloserEnd:   "18:30",
	}
}

func at(t *testing.T, r *civiltime.Resolver, date, clock string) time.Time {
	t.Helper()
	ts, err := r.At(date, clock)
	require.NoError(t, err)
	return ts
}

func shiftAt(t *testing.T, r *civiltime.Resolver, id, empID, date, startClock, endClock string) models.Shift {
	t.Helper()
	return models.Shift{
		ID:         id,
		EmployeeID: empID,
		Start:      at(t, r, date, startClock),
		End:        at(t, r, date, endClock),
	}
}

func emp(id, name, title string, maxHours float64) models.Employee {
	return models.Employee{
		ID:             id,
		Name:           name,
		JobTitle:       title,
		MaxWeeklyHours: maxHours,
		Active:         true,
	}
}

func newInputs(t *testing.T) *Inputs {
	t.Helper()
	return &Inputs{
		Clock:     testResolver(t),
		WeekStart: testWeekStart,
		Settings:  testSettings(),
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	in := newInputs(t)
	in.Employees = []models.Employee{
		emp("e1", "Dana", "Store Manager", 40),
		emp("e2", "Marcus", "Cashier", 25),
	}
	in.Shifts = []models.Shift{
		shiftAt(t, in.Clock, "s1", "e1", "2026-03-02", "08:30", "17:00"),
		shiftAt(t, in.Clock, "s2", "e2", "2026-03-02", "11:30", "20:00"),
	}
	in.Requirements = []models.RoleRequirement{
		{JobCode: models.JobCashier, MinWeeklyHours: 40},
	}

	first := Validate(in)
	second := Validate(in)
	require.Equal(t, first, second)
}

func TestValidateSkipsOrphanedShifts(t *testing.T) {
	in := newInputs(t)
	in.Employees = []models.Employee{emp("e1", "Dana", "Cashier", 40)}
	in.Shifts = []models.Shift{
		shiftAt(t, in.Clock, "s1", "ghost", "2026-03-02", "08:30", "17:00"),
	}

	// The orphaned shift must not panic or abort; it still counts toward
	// raw slot tallies but never toward role-specific checks.
	require.NotPanics(t, func() { Validate(in) })
}

func TestCountByCategory(t *testing.T) {
	issues := []models.Issue{
		{Category: models.CategoryHours},
		{Category: models.CategoryStaffing},
		{Category: models.CategoryStaffing},
	}
	counts := CountByCategory(issues)
	require.Equal(t, 1, counts[models.CategoryHours])
	require.Equal(t, 2, counts[models.CategoryStaffing])
	require.Equal(t, 0, counts[models.CategoryQuality])
}
