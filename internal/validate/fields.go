// Package validate holds the per-field validation rules for run requests.
// Each field has its own pure validator returning the normalized value or a
// typed error; Request runs all of them so a reply can report every failing
// field at once.
package validate

import (
	"strings"

	"jesbridge/backend/helper"
	"jesbridge/backend/internal/model"
)

func reportDate(v string) (string, *model.FieldError) {
	if _, err := ParseDDMMMYYYY(v); err != nil {
		return "", &model.FieldError{Field: "report_date", Code: model.CodeDateFormat, Message: err.Error()}
	}
	// Stored as supplied; computation re-parses it.
	return v, nil
}

func previousDate(v string) (string, *model.FieldError) {
	if strings.TrimSpace(v) == "" {
		return "", nil
	}
	if _, err := ParseDDMMMYYYY(v); err != nil {
		return "", &model.FieldError{Field: "previous_date", Code: model.CodeDateFormat, Message: err.Error()}
	}
	return v, nil
}

func lcrLines(v string) (string, *model.FieldError) {
	var parts []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "", &model.FieldError{Field: "lcr_lines", Code: model.CodeMissingLCRLines, Message: "At least one LCR line is required"}
	}
	for _, p := range parts {
		if !helper.IsDigits(p) {
			return "", &model.FieldError{Field: "lcr_lines", Code: model.CodeNonIntegerLCRLine, Message: "LCR lines must be comma-separated integers"}
		}
	}
	return strings.Join(parts, ","), nil
}

func country(v string) (string, *model.FieldError) {
	vv := strings.ToUpper(strings.TrimSpace(v))
	if len(vv) != 2 && len(vv) != 3 {
		return "", &model.FieldError{Field: "country", Code: model.CodeInvalidCountry, Message: "Country must be ISO code (2 or 3 letters)"}
	}
	return vv, nil
}

// Request validates every field of req independently and returns the
// normalized request. Errors are collected in field order; a non-empty slice
// means the request must be rejected.
func Request(req model.RunRequest) (model.RunRequest, []model.FieldError) {
	var out model.RunRequest
	var errs []model.FieldError

	collect := func(value string, fieldErr *model.FieldError) string {
		if fieldErr != nil {
			errs = append(errs, *fieldErr)
		}
		return value
	}

	out.ReportDate = collect(reportDate(req.ReportDate))
	out.PreviousDate = collect(previousDate(req.PreviousDate))
	out.LCRLines = collect(lcrLines(req.LCRLines))
	out.Country = collect(country(req.Country))

	return out, errs
}
