package library

// ReadingStatus is the state of a user's relationship to one book. Any
// status is reachable from any other; transitions only gate date side
// effects, never reachability.
type ReadingStatus string

const (
	StatusPending   ReadingStatus = "PENDING"
	StatusReading   ReadingStatus = "READING"
	StatusRead      ReadingStatus = "READ"
	StatusPaused    ReadingStatus = "PAUSED"
	StatusAbandoned ReadingStatus = "ABANDONED"
)

var AllStatuses = []ReadingStatus{
	StatusPending,
	StatusReading,
	StatusRead,
	StatusPaused,
	StatusAbandoned,
}

func (s ReadingStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ProgressKind is the unit a progress value is interpreted against.
type ProgressKind string

const (
	ProgressPercentage ProgressKind = "PERCENTAGE"
	ProgressPages      ProgressKind = "PAGES"
)

func (k ProgressKind) IsValid() bool {
	return k == ProgressPercentage || k == ProgressPages
}
