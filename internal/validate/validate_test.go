package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jesbridge/backend/internal/model"
)

func TestParseDDMMMYYYY(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "plain",
			input: "31AUG2019",
			want:  time.Date(2019, time.August, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			input: "  31AUG2019\t",
			want:  time.Date(2019, time.August, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "lowercase month",
			input: "31aug2019",
			want:  time.Date(2019, time.August, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "mixed case month",
			input: "01Jan2020",
			want:  time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "leap day",
			input: "29FEB2020",
			want:  time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{name: "dashes", input: "31-AUG-2019", wantErr: true},
		{name: "short day", input: "3AUG2019", wantErr: true},
		{name: "unknown month", input: "31XXX2019", wantErr: true},
		{name: "day overflow", input: "32AUG2019", wantErr: true},
		{name: "day zero", input: "00AUG2019", wantErr: true},
		{name: "not a leap year", input: "29FEB2019", wantErr: true},
		{name: "non-numeric year", input: "31AUGYEAR", wantErr: true},
		{name: "signed day", input: "+1AUG2019", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDDMMMYYYY(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "Invalid date format for '"+tc.input+"'")
				assert.Contains(t, err.Error(), "Use DDMMMYYYY (e.g., 31AUG2019)")
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
		})
	}
}

func TestRequest(t *testing.T) {
	valid := model.RunRequest{
		ReportDate:   "31AUG2019",
		PreviousDate: "31JUL2019",
		LCRLines:     "6,17",
		Country:      "SG",
	}

	t.Run("valid request passes unchanged", func(t *testing.T) {
		out, errs := Request(valid)
		assert.Empty(t, errs)
		assert.Equal(t, valid, out)
	})

	t.Run("blank previous date normalized away", func(t *testing.T) {
		req := valid
		req.PreviousDate = "   "
		out, errs := Request(req)
		assert.Empty(t, errs)
		assert.Equal(t, "", out.PreviousDate)
	})

	t.Run("lcr lines trimmed and rejoined", func(t *testing.T) {
		req := valid
		req.LCRLines = " 6 , ,17,  42 ,"
		out, errs := Request(req)
		assert.Empty(t, errs)
		assert.Equal(t, "6,17,42", out.LCRLines)
	})

	t.Run("country uppercased", func(t *testing.T) {
		req := valid
		req.Country = " sg "
		out, errs := Request(req)
		assert.Empty(t, errs)
		assert.Equal(t, "SG", out.Country)
	})

	t.Run("three letter country accepted", func(t *testing.T) {
		req := valid
		req.Country = "sgp"
		out, errs := Request(req)
		assert.Empty(t, errs)
		assert.Equal(t, "SGP", out.Country)
	})

	tests := []struct {
		name        string
		mutate      func(*model.RunRequest)
		wantField   string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "bad report date",
			mutate:      func(r *model.RunRequest) { r.ReportDate = "31-AUG-2019" },
			wantField:   "report_date",
			wantCode:    model.CodeDateFormat,
			wantMessage: "Invalid date format for '31-AUG-2019'. Use DDMMMYYYY (e.g., 31AUG2019)",
		},
		{
			name:        "bad previous date",
			mutate:      func(r *model.RunRequest) { r.PreviousDate = "2019-07-31" },
			wantField:   "previous_date",
			wantCode:    model.CodeDateFormat,
			wantMessage: "Invalid date format for '2019-07-31'. Use DDMMMYYYY (e.g., 31AUG2019)",
		},
		{
			name:        "empty lcr lines",
			mutate:      func(r *model.RunRequest) { r.LCRLines = "" },
			wantField:   "lcr_lines",
			wantCode:    model.CodeMissingLCRLines,
			wantMessage: "At least one LCR line is required",
		},
		{
			name:        "only separators",
			mutate:      func(r *model.RunRequest) { r.LCRLines = " , ," },
			wantField:   "lcr_lines",
			wantCode:    model.CodeMissingLCRLines,
			wantMessage: "At least one LCR line is required",
		},
		{
			name:        "non integer token",
			mutate:      func(r *model.RunRequest) { r.LCRLines = "6,abc" },
			wantField:   "lcr_lines",
			wantCode:    model.CodeNonIntegerLCRLine,
			wantMessage: "LCR lines must be comma-separated integers",
		},
		{
			name:        "negative token",
			mutate:      func(r *model.RunRequest) { r.LCRLines = "-6,17" },
			wantField:   "lcr_lines",
			wantCode:    model.CodeNonIntegerLCRLine,
			wantMessage: "LCR lines must be comma-separated integers",
		},
		{
			name:        "country too short",
			mutate:      func(r *model.RunRequest) { r.Country = "s" },
			wantField:   "country",
			wantCode:    model.CodeInvalidCountry,
			wantMessage: "Country must be ISO code (2 or 3 letters)",
		},
		{
			name:        "country too long",
			mutate:      func(r *model.RunRequest) { r.Country = "SGPX" },
			wantField:   "country",
			wantCode:    model.CodeInvalidCountry,
			wantMessage: "Country must be ISO code (2 or 3 letters)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			_, errs := Request(req)
			assert.Len(t, errs, 1)
			assert.Equal(t, tc.wantField, errs[0].Field)
			assert.Equal(t, tc.wantCode, errs[0].Code)
			assert.Equal(t, tc.wantMessage, errs[0].Message)
		})
	}

	t.Run("all failures collected in field order", func(t *testing.T) {
		req := model.RunRequest{
			ReportDate:   "bad",
			PreviousDate: "worse",
			LCRLines:     "x",
			Country:      "q",
		}
		_, errs := Request(req)
		assert.Len(t, errs, 4)
		assert.Equal(t, "report_date", errs[0].Field)
		assert.Equal(t, "previous_date", errs[1].Field)
		assert.Equal(t, "lcr_lines", errs[2].Field)
		assert.Equal(t, "country", errs[3].Field)
	})
}
