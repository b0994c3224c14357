package domain

// Counts is a per-status tally of a submission set.
type Counts struct {
	Pending   int `json:"pending"`
	Ongoing   int `json:"ongoing"`
	Completed int `json:"completed"`
	Rejected  int `json:"rejected"`
}

// Total is the number of submissions counted.
func (c Counts) Total() int {
	return c.Pending + c.Ongoing + c.Completed + c.Rejected
}

// Get returns the count for s; unknown statuses count as zero.
func (c Counts) Get(s Status) int {
	switch s {
	case StatusPending:
		return c.Pending
	case StatusOngoing:
		return c.Ongoing
	case StatusCompleted:
		return c.Completed
	case StatusRejected:
		return c.Rejected
	}
	return 0
}
