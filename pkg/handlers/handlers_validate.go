package handlers

import (
	"net/http"

	"github.com/arnavshah/schedule-validator-go/pkg/models"
	"github.com/gin-gonic/gin"
)

// PreflightInput checks a validation snapshot for structural problems before
// the caller spends a full evaluation on it: duplicate IDs, inverted shift
// times, orphaned shift references. Orphans are reported, never fatal; the
// evaluators would just skip them.
func (h *Handler) PreflightInput(c *gin.Context) {
	var input models.ValidationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(input.Employees) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one employee is required",
		})
		return
	}

	// Check for duplicate IDs
	empIDs := make(map[string]bool)
	for _, e := range input.Employees {
		if empIDs[e.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate employee ID: " + e.ID})
			return
		}
		empIDs[e.ID] = true
	}

	shiftIDs := make(map[string]bool)
	for _, s := range input.Shifts {
		if shiftIDs[s.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate shift ID: " + s.ID})
			return
		}
		shiftIDs[s.ID] = true

		if !s.End.After(s.Start) {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Shift " + s.ID + " ends before it starts"})
			return
		}
	}

	// Orphaned shifts are tolerated downstream but worth surfacing here
	var orphans []string
	for _, s := range input.Shifts {
		if !empIDs[s.EmployeeID] {
			orphans = append(orphans, s.ID)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":           true,
		"orphaned_shifts": orphans,
		"stats": gin.H{
			"employee_count": len(input.Employees),
			"shift_count":    len(input.Shifts),
		},
	})
}
