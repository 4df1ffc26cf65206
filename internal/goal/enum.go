package goal

// GoalKind is what a goal counts: finished books or pages read.
type GoalKind string

const (
	KindBooks GoalKind = "BOOKS"
	KindPages GoalKind = "PAGES"
)

func (k GoalKind) IsValid() bool {
	return k == KindBooks || k == KindPages
}

// DurationKind fixes the goal window at creation time.
type DurationKind string

const (
	DurationAnnual  DurationKind = "ANNUAL"
	DurationMonthly DurationKind = "MONTHLY"
)

func (d DurationKind) IsValid() bool {
	return d == DurationAnnual || d == DurationMonthly
}
