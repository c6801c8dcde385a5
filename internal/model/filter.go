package model

// Status narrows the feed to one of the comment flags.
type Status string

const (
	StatusAll       Status = "all"
	StatusFlagged   Status = "flagged"
	StatusAttention Status = "attention"
	StatusArchived  Status = "archived"
)

var Statuses = []Status{StatusAll, StatusFlagged, StatusAttention, StatusArchived}

func (s Status) IsValid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// FilterCriteria is the conjunction of constraints applied to the feed.
// Empty sets mean no restriction on that dimension.
type FilterCriteria struct {
	Search     string      `json:"search"`
	Status     Status      `json:"status"`
	Platforms  []Platform  `json:"platforms"`
	Emotions   []Emotion   `json:"emotions"`
	Sentiments []Sentiment `json:"sentiments"`
	Categories []Category  `json:"categories"`
}

// DefaultFilterCriteria matches every comment.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Status:     StatusAll,
		Platforms:  []Platform{},
		Emotions:   []Emotion{},
		Sentiments: []Sentiment{},
		Categories: []Category{},
	}
}

// Clone returns a deep copy so reducers never share backing arrays.
func (f FilterCriteria) Clone() FilterCriteria {
	return FilterCriteria{
		Search:     f.Search,
		Status:     f.Status,
		Platforms:  append([]Platform{}, f.Platforms...),
		Emotions:   append([]Emotion{}, f.Emotions...),
		Sentiments: append([]Sentiment{}, f.Sentiments...),
		Categories: append([]Category{}, f.Categories...),
	}
}

// IsDefault reports whether the criteria impose no restriction.
func (f FilterCriteria) IsDefault() bool {
	return f.Search == "" &&
		(f.Status == "" || f.Status == StatusAll) &&
		len(f.Platforms) == 0 &&
		len(f.Emotions) == 0 &&
		len(f.Sentiments) == 0 &&
		len(f.Categories) == 0
}
