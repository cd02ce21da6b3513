package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferPeriod(t *testing.T) {
	tests := []struct {
		name      string
		period    string
		wantMonth string
		wantYear  string
	}{
		{
			name:      "full month name",
			period:    "August 2025",
			wantMonth: "August",
			wantYear:  "2025",
		},
		{
			name:      "full month name case insensitive",
			period:    "statement for AUGUST 2025",
			wantMonth: "August",
			wantYear:  "2025",
		},
		{
			name:      "three letter abbreviation",
			period:    "Aug-2025",
			wantMonth: "August",
			wantYear:  "2025",
		},
		{
			name:      "day first slash range",
			period:    "01/08/2025 - 31/08/2025",
			wantMonth: "August",
			wantYear:  "2025",
		},
		{
			name:      "month first slash range",
			period:    "08/01/2025 - 08/31/2025",
			wantMonth: "August",
			wantYear:  "2025",
		},
		{
			name:      "day first proven by later date",
			period:    "05/03/2025 - 28/03/2025",
			wantMonth: "March",
			wantYear:  "2025",
		},
		{
			name:      "iso date range",
			period:    "2025-08-01 to 2025-08-31",
			wantMonth: "August",
			wantYear:  "2025",
		},
		{
			name:      "dash mdy date",
			period:    "08-01-2025",
			wantMonth: "August",
			wantYear:  "2025",
		},
		{
			name:      "year only",
			period:    "sometime in 2025",
			wantMonth: "",
			wantYear:  "2025",
		},
		{
			name:      "nothing recognizable",
			period:    "pending review",
			wantMonth: "",
			wantYear:  "",
		},
		{
			name:      "empty input",
			period:    "",
			wantMonth: "",
			wantYear:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, year := InferPeriod(tt.period)
			assert.Equal(t, tt.wantMonth, month)
			assert.Equal(t, tt.wantYear, year)
		})
	}
}
