package validator

import (
	"context"
	"testing"
	"time"

	"github.com/arnavshah/schedule-validator-go/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	calls      int
	employeeID string
	start, end time.Time
	err        error
}

func (f *fakeStore) CreateShift(ctx context.Context, employeeID string, start, end time.Time) (string, error) {
	f.calls++
	f.employeeID = employeeID
	f.start = start
	f.end = end
	if f.err != nil {
		return "", f.err
	}
	return "shift-new", nil
}

func TestRemediate_NoAvailableEmployee(t *testing.T) {
	in := newInputs(t)
	in.Employees = []models.Employee{emp("g1", "Rosa", "Donation Door Greeter", 40)}
	// The only greeter already works Monday, so the closer slot has no taker.
	in.Shifts = []models.Shift{
		shiftAt(t, in.Clock, "s1", "g1", "2026-03-02", "08:30", "17:00"),
	}

	store := &fakeStore{}
	_, err := Remediate(context.Background(), in, models.RemediationDescriptor{
		Day:     "2026-03-02",
		JobCode: models.JobDonationGreeter,
		Slot:    models.SlotCloser,
	}, store)

	require.ErrorIs(t, err, ErrNoAvailableEmployee)
	assert.Zero(t, store.calls, "failed remediation must not touch the store")
}

func TestRemediate_PicksLowestEmployeeID(t *testing.T) {
	in := newInputs(t)
	// Roster deliberately out of ID order.
	in.Employees = []models.Employee{
		emp("z9", "Zoe", "Cashier", 40),
		emp("a1", "Ana", "Cashier", 40),
	}

	store := &fakeStore{}
	result, err := Remediate(context.Background(), in, models.RemediationDescriptor{
		Day:     "2026-03-02",
		JobCode: models.JobCashier,
		Slot:    models.SlotOpener,
	}, store)

	require.NoError(t, err)
	assert.Equal(t, "a1", result.EmployeeID)
	assert.Equal(t, "Ana", result.EmployeeName)
	assert.Equal(t, "shift-new", result.ShiftID)
	assert.Equal(t, 1, store.calls)
}

func TestRemediate_OpenerTimes(t *testing.T) {
	in := newInputs(t)
	in.Employees = []models.Employee{emp("c1", "Dana", "Cashier", 40)}

	store := &fakeStore{}
	result, err := Remediate(context.Background(), in, models.RemediationDescriptor{
		Day:     "2026-03-02",
		JobCode: models.JobCashier,
		Slot:    models.SlotOpener,
	}, store)

	require.NoError(t, err)
	assert.Equal(t, "08:30", in.Clock.ClockOf(result.Start))
	assert.Equal(t, "17:00", in.Clock.ClockOf(result.End))
	assert.Equal(t, "2026-03-02", in.Clock.DateOf(result.Start))
}

func TestRemediate_SundayCloserTimes(t *testing.T) {
	in := newInputs(t)
	in.Employees = []models.Employee{emp("g1", "Rosa", "Donation Door Greeter", 40)}

	store := &fakeStore{}
	result, err := Remediate(context.Background(), in, models.RemediationDescriptor{
		Day:     "2026-03-01", // a Sunday
		JobCode: models.JobDonationGreeter,
		Slot:    models.SlotCloser,
	}, store)

	require.NoError(t, err)
	assert.Equal(t, "10:00", in.Clock.ClockOf(result.Start))
	assert.Equal(t, "18:30", in.Clock.ClockOf(result.End))
}

func TestRemediate_ManagerTargetAcceptsAnyManagerCode(t *testing.T) {
	in := newInputs(t)
	in.Employees = []models.Employee{
		emp("m1", "Dana", "Store Manager", 40),
		emp("c1", "Marcus", "Cashier", 40),
	}

	store := &fakeStore{}
	result, err := Remediate(context.Background(), in, models.RemediationDescriptor{
		Day:     "2026-03-03",
		JobCode: models.JobTeamLead,
		Slot:    models.SlotCloser,
	}, store)

	require.NoError(t, err)
	assert.Equal(t, "m1", result.EmployeeID)
}

func TestRemediate_SkipsHiddenAndInactive(t *testing.T) {
	in := newInputs(t)
	hidden := emp("a1", "Ana", "Cashier", 40)
	hidden.Hidden = true
	inactive := emp("b1", "Ben", "Cashier", 40)
	inactive.Active = false
	in.Employees = []models.Employee{hidden, inactive, emp("c1", "Dana", "Cashier", 40)}

	store := &fakeStore{}
	result, err := Remediate(context.Background(), in, models.RemediationDescriptor{
		Day:     "2026-03-02",
		JobCode: models.JobCashier,
		Slot:    models.SlotMid,
	}, store)

	require.NoError(t, err)
	assert.Equal(t, "c1", result.EmployeeID)
	// Mid remediation uses the first mid template.
	assert.Equal(t, "09:00", in.Clock.ClockOf(result.Start))
	assert.Equal(t, "17:30", in.Clock.ClockOf(result.End))
}

func TestRemediate_UnknownSlot(t *testing.T) {
	in := newInputs(t)
	in.Employees = []models.Employee{emp("c1", "Dana", "Cashier", 40)}

	store := &fakeStore{}
	_, err := Remediate(context.Background(), in, models.RemediationDescriptor{
		Day:     "2026-03-02",
		JobCode: models.JobCashier,
		Slot:    models.SlotNone,
	}, store)

	require.Error(t, err)
	assert.Zero(t, store.calls)
}
