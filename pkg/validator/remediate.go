package validator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/arnavshah/schedule-validator-go/pkg/models"
)

// ErrNoAvailableEmployee is returned when no qualifying employee can take the
// corrective shift. Callers must surface this distinctly; it is not a silent
// no-op.
var ErrNoAvailableEmployee = errors.New("no available employee for remediation")

// ShiftCreator is the one write the engine ever performs, implemented by the
// external scheduling store.
type ShiftCreator interface {
	CreateShift(ctx context.Context, employeeID string, start, end time.Time) (string, error)
}

// Remediate executes one issue's remediation descriptor: pick a qualifying
// employee, build the corrective shift from the requested slot template, and
// ask the store to create it. This is a best-effort single-slot fix; the
// caller re-evaluates on its next refresh rather than here.
//
// Candidates are filtered to schedulable employees whose role matches the
// descriptor (any manager code when a manager is requested) and who do not
// already hold a shift on the target day, then sorted by employee ID so the
// choice is stable regardless of roster order.
func Remediate(ctx context.Context, in *Inputs, desc models.RemediationDescriptor, store ShiftCreator) (*models.RemediationResult, error) {
	tmpl, ok := templateFor(in.Clock, in.Settings, desc.Day, desc.Slot)
	if !ok {
		return nil, fmt.Errorf("unknown slot type %q", desc.Slot)
	}

	busy := make(map[string]bool)
	for _, s := range in.Shifts {
		if in.Clock.DateOf(s.Start) == desc.Day {
			busy[s.EmployeeID] = true
		}
	}

	var candidates []models.Employee
	for _, emp := range in.Employees {
		if !emp.Schedulable() || busy[emp.ID] {
			continue
		}
		if !roleMatches(emp.Role(), desc.JobCode) {
			continue
		}
		candidates = append(candidates, emp)
	}
	if len(candidates) == 0 {
		return nil, ErrNoAvailableEmployee
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	chosen := candidates[0]

	start, err := in.Clock.At(desc.Day, tmpl.Start)
	if err != nil {
		return nil, fmt.Errorf("resolve slot start: %w", err)
	}
	end, err := in.Clock.At(desc.Day, tmpl.End)
	if err != nil {
		return nil, fmt.Errorf("resolve slot end: %w", err)
	}

	shiftID, err := store.CreateShift(ctx, chosen.ID, start, end)
	if err != nil {
		return nil, fmt.Errorf("create corrective shift: %w", err)
	}

	return &models.RemediationResult{
		ShiftID:      shiftID,
		EmployeeID:   chosen.ID,
		EmployeeName: chosen.Name,
		Start:        start,
		End:          end,
	}, nil
}

// roleMatches widens a manager-coded target to the whole manager category.
func roleMatches(role, target models.JobCode) bool {
	if models.IsManager(target) {
		return models.IsManager(role)
	}
	return role == target
}
