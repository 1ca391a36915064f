package model

type RunRequest struct {
	ReportDate   string `json:"report_date"`   // e.g. "31AUG2019"
	PreviousDate string `json:"previous_date"` // optional, same format; blank means not provided
	LCRLines     string `json:"lcr_lines"`     // comma-separated integers, e.g. "6,17"
	Country      string `json:"country"`       // ISO code, 2 or 3 letters
}
