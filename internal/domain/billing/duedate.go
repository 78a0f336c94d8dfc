package billing

import "time"

// Payment term policies. Each maps an issue date to a due date.
const (
	TermDueOnReceipt = "due-on-receipt"
	TermNet7         = "net-7"
	TermNet14        = "net-14"
	TermNet30        = "net-30"
	TermNet60        = "net-60"
)

// termDays maps net-N terms to their calendar-day offsets.
var termDays = map[string]int{
	TermNet7:  7,
	TermNet14: 14,
	TermNet30: 30,
	TermNet60: 60,
}

// PaymentTermLabels lists the supported terms with their display labels,
// in menu order.
func PaymentTermLabels() []struct{ Value, Label string } {
	return []struct{ Value, Label string }{
		{TermDueOnReceipt, "Due on Receipt"},
		{TermNet7, "Net 7 Days"},
		{TermNet14, "Net 14 Days"},
		{TermNet30, "Net 30 Days"},
		{TermNet60, "Net 60 Days"},
	}
}

// ResolveDueDate maps an issue date and a payment term to the due date.
// due-on-receipt returns the issue date unchanged; net-N adds N calendar
// days (not business days). An unrecognized term falls back to net-14;
// that is the documented default, not an error.
func ResolveDueDate(issueDate time.Time, term string) time.Time {
	if term == TermDueOnReceipt {
		return issueDate
	}
	days, ok := termDays[term]
	if !ok {
		days = termDays[TermNet14]
	}
	return issueDate.AddDate(0, 0, days)
}
