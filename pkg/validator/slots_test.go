package validator

import (
	"testing"

	"github.com/arnavshah/schedule-validator-go/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestMatchSlot(t *testing.T) {
	r := testResolver(t)
	set := testSettings()

	tests := []struct {
		name  string
		date  string
		start string
		end   string
		want  models.SlotType
	}{
		{"exact opener", "2026-03-02", "08:30", "17:00", models.SlotOpener},
		{"exact weekday closer", "2026-03-02", "11:30", "20:00", models.SlotCloser},
		{"one minute off is not coverage", "2026-03-02", "08:31", "17:00", models.SlotNone},
		{"short end is not coverage", "2026-03-02", "08:30", "16:59", models.SlotNone},
		{"first mid template", "2026-03-03", "09:00", "17:30", models.SlotMid},
		{"second mid template", "2026-03-03", "10:00", "18:30", models.SlotMid},
		{"third mid template", "2026-03-03", "11:00", "19:30", models.SlotMid},
		{"sunday uses the early closer pair", "2026-03-01", "10:00", "18:30", models.SlotCloser},
		{"weekday closer pair does not close sunday", "2026-03-01", "11:30", "20:00", models.SlotNone},
		{"sunday pair is not a closer midweek", "2026-03-04", "10:00", "18:30", models.SlotMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := shiftAt(t, r, "s", "e", tt.date, tt.start, tt.end)
			require.Equal(t, tt.want, MatchSlot(r, s, set))
		})
	}
}
