package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftStore is the gorm-backed scheduling store the remediation executor
// writes through. It satisfies validator.ShiftCreator.
type ShiftStore struct {
	db *gorm.DB
}

// NewShiftStore wraps a database handle.
func NewShiftStore(db *gorm.DB) *ShiftStore {
	return &ShiftStore{db: db}
}

// CreateShift inserts one corrective shift and returns its generated ID.
func (s *ShiftStore) CreateShift(ctx context.Context, employeeID string, start, end time.Time) (string, error) {
	shift := StoredShift{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Start:      start,
		End:        end,
		Source:     "remediation",
	}
	if err := s.db.WithContext(ctx).Create(&shift).Error; err != nil {
		return "", err
	}
	return shift.ID, nil
}

// HolidayLookup returns the holiday-oracle closure the engine consumes: date
// in, holiday name out when the store is closed that day.
func HolidayLookup(db *gorm.DB) func(date string) (string, bool) {
	return func(date string) (string, bool) {
		var h Holiday
		// A broken lookup must not fail the whole pass; any error reads as
		// "store open that day".
		if err := db.Where("date = ?", date).First(&h).Error; err != nil {
			return "", false
		}
		return h.Name, true
	}
}
