package request

// ReportRangeRequest bounds a report to [from, to] dates in YYYY-MM-DD form.
// Both default to today when omitted.
type ReportRangeRequest struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit int    `form:"limit"`
}
