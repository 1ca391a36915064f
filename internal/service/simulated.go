package service

import (
	"strconv"
	"strings"
	"time"

	"jesbridge/backend/internal/model"
	"jesbridge/backend/internal/validate"
)

// SimulatedRunner stands in for the JES integration: it derives deterministic
// rows from the request instead of submitting a job. Inputs must already be
// validated.
type SimulatedRunner struct{}

func NewSimulatedRunner() *SimulatedRunner {
	return &SimulatedRunner{}
}

// Proleptic-Gregorian day number of 1970-01-01 (the toordinal convention:
// 0001-01-01 is day 1).
const unixEpochOrdinal = 719163

func dateOrdinal(t time.Time) int64 {
	secs := t.Unix()
	days := secs / 86400
	if secs < 0 && secs%86400 != 0 {
		days--
	}
	return days + unixEpochOrdinal
}

func (r *SimulatedRunner) Run(req model.RunRequest) (*model.RunResponse, error) {
	rd, err := validate.ParseDDMMMYYYY(req.ReportDate)
	if err != nil {
		return nil, err
	}

	var pd *time.Time
	if req.PreviousDate != "" {
		t, err := validate.ParseDDMMMYYYY(req.PreviousDate)
		if err != nil {
			return nil, err
		}
		pd = &t
	}

	pieces := strings.Split(req.LCRLines, ",")
	lines := make([]int, 0, len(pieces))
	for _, p := range pieces {
		ln, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		lines = append(lines, ln)
	}

	adj := float64(dateOrdinal(rd) % 31)
	var prevAdj float64
	if pd != nil {
		prevAdj = float64(dateOrdinal(*pd) % 31)
	}

	rows := make([]model.ResultRow, 0, 3*len(lines))
	for _, ln := range lines {
		base := float64(ln * 100)
		rows = append(rows, model.ResultRow{Line: ln, Metric: model.MetricCurrent, Value: base + adj})
		if pd != nil {
			rows = append(rows, model.ResultRow{Line: ln, Metric: model.MetricPrevious, Value: base + prevAdj})
			rows = append(rows, model.ResultRow{Line: ln, Metric: model.MetricDelta, Value: adj - prevAdj})
		}
	}

	meta := model.Meta{
		ReportDate: req.ReportDate,
		LCRLines:   req.LCRLines,
		Country:    req.Country,
	}
	if req.PreviousDate != "" {
		prev := req.PreviousDate
		meta.PreviousDate = &prev
	}

	return &model.RunResponse{
		Columns: model.ResultColumns,
		Rows:    rows,
		Meta:    meta,
	}, nil
}
