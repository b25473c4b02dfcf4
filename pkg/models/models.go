package models

import "time"

// Employee represents a staff member on the weekly roster.
type Employee struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	JobTitle       string  `json:"job_title"`
	MaxWeeklyHours float64 `json:"max_weekly_hours"`
	Active         bool    `json:"active"`
	Hidden         bool    `json:"hidden,omitempty"`
	Location       string  `json:"location,omitempty"`
}

// Schedulable reports whether the employee participates in coverage and
// remediation. Hidden or inactive employees never do.
func (e Employee) Schedulable() bool {
	return e.Active && !e.Hidden
}

// Role returns the employee's canonical job code.
func (e Employee) Role() JobCode {
	return CanonicalJobCode(e.JobTitle)
}

// Shift is one scheduled block of work. Start and End are absolute instants;
// wall-clock interpretation always goes through the civiltime resolver.
type Shift struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// RoleRequirement sets a weekly paid-hours floor for one canonical job code.
type RoleRequirement struct {
	JobCode        JobCode `json:"job_code"`
	MinWeeklyHours float64 `json:"min_weekly_hours"`
}

// GlobalSettings holds the per-deployment staffing configuration. Template
// times are wall-clock HH:mm strings in the business timezone.
type GlobalSettings struct {
	OpenersRequired int `json:"openers_required"`
	ClosersRequired int `json:"closers_required"`
	ManagersPerSlot int `json:"managers_per_slot"`

	OpenerStart string `json:"opener_start"`
	OpenerEnd   string `json:"opener_end"`
	CloserStart string `json:"closer_start"`
	CloserEnd   string `json:"closer_end"`

	// Sunday trades the weekday closing pair for an earlier one.
	SundayCloserStart string `json:"sunday_closer_start"`
	SundayCloserEnd   string `json:"sunday_closer_end"`
}

// TimeOffStatusApproved is the only status that participates in conflict
// detection.
const TimeOffStatusApproved = "approved"

// TimeOffRequest is a single-day time-off request.
type TimeOffRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // yyyy-MM-dd in business time
	Status     string `json:"status"`
}

// Approved reports whether the request counts for conflict checks.
func (t TimeOffRequest) Approved() bool {
	return t.Status == TimeOffStatusApproved
}

// Severity of a reported issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Category groups issues for display.
type Category string

const (
	CategoryHours     Category = "hours"
	CategoryStaffing  Category = "staffing"
	CategoryQuality   Category = "quality"
	CategoryConflicts Category = "conflicts"
)

// SlotType names the coverage slot a shift matches.
type SlotType string

const (
	SlotOpener SlotType = "opener"
	SlotCloser SlotType = "closer"
	SlotMid    SlotType = "mid"
	SlotNone   SlotType = "none"
)

// RemediationDescriptor identifies the corrective shift that would resolve an
// issue: which day, which role, which coverage slot.
type RemediationDescriptor struct {
	Day     string   `json:"day"` // yyyy-MM-dd in business time
	JobCode JobCode  `json:"job_code"`
	Slot    SlotType `json:"slot"`
}

// Issue is one actionable deficiency found in the schedule.
type Issue struct {
	Severity    Severity               `json:"severity"`
	Category    Category               `json:"category"`
	Message     string                 `json:"message"`
	Remediation *RemediationDescriptor `json:"remediation,omitempty"`
}

// ValidationInput is the snapshot supplied to the validation endpoint.
type ValidationInput struct {
	WeekStart      string            `json:"week_start,omitempty"` // Sunday, yyyy-MM-dd
	Employees      []Employee        `json:"employees"`
	Shifts         []Shift           `json:"shifts"`
	PreviousShifts []Shift           `json:"previous_shifts,omitempty"`
	Requirements   []RoleRequirement `json:"requirements,omitempty"`
	Settings       GlobalSettings    `json:"settings"`
	TimeOff        []TimeOffRequest  `json:"time_off,omitempty"`
}

// ValidationResponse is the ordered issue list plus per-category counts.
type ValidationResponse struct {
	Issues []Issue          `json:"issues"`
	Counts map[Category]int `json:"counts"`
}

// RemediationInput carries the descriptor plus the snapshot the executor
// filters candidates from.
type RemediationInput struct {
	Descriptor RemediationDescriptor `json:"descriptor"`
	Employees  []Employee            `json:"employees"`
	Shifts     []Shift               `json:"shifts"`
	Settings   GlobalSettings        `json:"settings"`
}

// RemediationResult reports the corrective shift that was created.
type RemediationResult struct {
	ShiftID      string    `json:"shift_id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
}
