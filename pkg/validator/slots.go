package validator

import (
	"time"

	"github.com/arnavshah/schedule-validator-go/pkg/civiltime"
	"github.com/arnavshah/schedule-validator-go/pkg/models"
)

// slotTemplate is one named wall-clock shift shape.
type slotTemplate struct {
	Start string
	End   string
}

// midTemplates are the three recognized mid-shift shapes. A day has mid
// coverage when any scheduled shift matches any one of them.
var midTemplates = []slotTemplate{
	{Start: "09:00", End: "17:30"},
	{Start: "10:00", End: "18:30"},
	{Start: "11:00", End: "19:30"},
}

// openerTemplate returns the configured opening slot.
func openerTemplate(set models.GlobalSettings) slotTemplate {
	return slotTemplate{Start: set.OpenerStart, End: set.OpenerEnd}
}

// closerTemplate returns the configured closing slot for the given date.
// Sundays close early, so the Sunday pair replaces the weekday pair.
func closerTemplate(r *civiltime.Resolver, set models.GlobalSettings, date string) slotTemplate {
	if wd, err := r.WeekdayOf(date); err == nil && wd == time.Sunday {
		return slotTemplate{Start: set.SundayCloserStart, End: set.SundayCloserEnd}
	}
	return slotTemplate{Start: set.CloserStart, End: set.CloserEnd}
}

// MatchSlot classifies a shift against the coverage templates. Matching is
// exact HH:mm equality of the wall-clock start and end: a shift one minute
// off a template does not count as coverage. Whether that should tolerate a
// small window is an open question; the current store data is entered from
// the same templates, so exact matching holds.
func MatchSlot(r *civiltime.Resolver, s models.Shift, set models.GlobalSettings) models.SlotType {
	date := r.DateOf(s.Start)
	start := r.ClockOf(s.Start)
	end := r.ClockOf(s.End)

	if op := openerTemplate(set); start == op.Start && end == op.End {
		return models.SlotOpener
	}
	if cl := closerTemplate(r, set, date); start == cl.Start && end == cl.End {
		return models.SlotCloser
	}
	for _, mid := range midTemplates {
		if start == mid.Start && end == mid.End {
			return models.SlotMid
		}
	}
	return models.SlotNone
}

// templateFor resolves the wall-clock times to use when building a
// remediation shift for the requested slot on the requested day.
func templateFor(r *civiltime.Resolver, set models.GlobalSettings, day string, slot models.SlotType) (slotTemplate, bool) {
	switch slot {
	case models.SlotOpener:
		return openerTemplate(set), true
	case models.SlotCloser:
		return closerTemplate(r, set, day), true
	case models.SlotMid:
		return midTemplates[0], true
	default:
		return slotTemplate{}, false
	}
}
