package dashboard

import (
	"comment-srv/internal/model"
)

// Dimension names one constraint of the filter criteria.
type Dimension string

const (
	DimensionStatus    Dimension = "status"
	DimensionPlatform  Dimension = "platform"
	DimensionEmotion   Dimension = "emotion"
	DimensionSentiment Dimension = "sentiment"
	DimensionCategory  Dimension = "category"
)

// Dimensions is the order pills are listed in.
var Dimensions = []Dimension{
	DimensionStatus, DimensionPlatform, DimensionEmotion, DimensionSentiment, DimensionCategory,
}

func (d Dimension) IsValid() bool {
	for _, v := range Dimensions {
		if v == d {
			return true
		}
	}
	return false
}

// CriteriaPatch is a partial update. Nil fields are left untouched.
type CriteriaPatch struct {
	Search     *string
	Status     *model.Status
	Platforms  []model.Platform
	Emotions   []model.Emotion
	Sentiments []model.Sentiment
	Categories []model.Category
}

// MergeCriteria applies patch over cur. A non-nil empty slice clears the dimension.
func MergeCriteria(cur model.FilterCriteria, patch CriteriaPatch) model.FilterCriteria {
	out := cur.Clone()
	if patch.Search != nil {
		out.Search = *patch.Search
	}
	if patch.Status != nil {
		out.Status = *patch.Status
	}
	if patch.Platforms != nil {
		out.Platforms = dedupe(patch.Platforms)
	}
	if patch.Emotions != nil {
		out.Emotions = dedupe(patch.Emotions)
	}
	if patch.Sentiments != nil {
		out.Sentiments = dedupe(patch.Sentiments)
	}
	if patch.Categories != nil {
		out.Categories = dedupe(patch.Categories)
	}
	return out
}

// ToggleCriteriaValue adds value to the dimension or removes it when present.
// The status dimension is single-valued and is set instead.
func ToggleCriteriaValue(cur model.FilterCriteria, dim Dimension, value string) (model.FilterCriteria, error) {
	if value == "" {
		return cur, ErrInvalidValue
	}
	out := cur.Clone()
	switch dim {
	case DimensionStatus:
		s := model.Status(value)
		if !s.IsValid() {
			return cur, ErrInvalidValue
		}
		out.Status = s
	case DimensionPlatform:
		p := model.Platform(value)
		if !p.IsValid() {
			return cur, ErrInvalidValue
		}
		out.Platforms = toggle(out.Platforms, p)
	case DimensionEmotion:
		e := model.Emotion(value)
		if !e.IsValid() {
			return cur, ErrInvalidValue
		}
		out.Emotions = toggle(out.Emotions, e)
	case DimensionSentiment:
		s := model.Sentiment(value)
		if !s.IsValid() {
			return cur, ErrInvalidValue
		}
		out.Sentiments = toggle(out.Sentiments, s)
	case DimensionCategory:
		out.Categories = toggle(out.Categories, model.Category(value))
	default:
		return cur, ErrInvalidDimension
	}
	return out, nil
}

// RemoveCriteriaValue drops value from the dimension. Absent values are a no-op.
// Removing the status resets it to all.
func RemoveCriteriaValue(cur model.FilterCriteria, dim Dimension, value string) (model.FilterCriteria, error) {
	out := cur.Clone()
	switch dim {
	case DimensionStatus:
		out.Status = model.StatusAll
	case DimensionPlatform:
		out.Platforms = remove(out.Platforms, model.Platform(value))
	case DimensionEmotion:
		out.Emotions = remove(out.Emotions, model.Emotion(value))
	case DimensionSentiment:
		out.Sentiments = remove(out.Sentiments, model.Sentiment(value))
	case DimensionCategory:
		out.Categories = remove(out.Categories, model.Category(value))
	default:
		return cur, ErrInvalidDimension
	}
	return out, nil
}

func ResetCriteria() model.FilterCriteria {
	return model.DefaultFilterCriteria()
}

// FilterPill is one removable active-filter chip.
type FilterPill struct {
	Dimension Dimension `json:"dimension"`
	Value     string    `json:"value"`
	Label     string    `json:"label"`
}

// ActiveFilters lists a pill per non-default constraint. The search text has no pill.
func ActiveFilters(c model.FilterCriteria) []FilterPill {
	pills := make([]FilterPill, 0)
	if c.Status != "" && c.Status != model.StatusAll {
		pills = append(pills, pill(DimensionStatus, string(c.Status)))
	}
	for _, v := range c.Platforms {
		pills = append(pills, pill(DimensionPlatform, string(v)))
	}
	for _, v := range c.Emotions {
		pills = append(pills, pill(DimensionEmotion, string(v)))
	}
	for _, v := range c.Sentiments {
		pills = append(pills, pill(DimensionSentiment, string(v)))
	}
	for _, v := range c.Categories {
		pills = append(pills, pill(DimensionCategory, string(v)))
	}
	return pills
}

func pill(d Dimension, v string) FilterPill {
	return FilterPill{Dimension: d, Value: v, Label: model.Capitalize(v)}
}

func toggle[T comparable](set []T, v T) []T {
	for _, s := range set {
		if s == v {
			return remove(set, v)
		}
	}
	return append(set, v)
}

func remove[T comparable](set []T, v T) []T {
	out := make([]T, 0, len(set))
	for _, s := range set {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

func dedupe[T comparable](set []T) []T {
	seen := make(map[T]struct{}, len(set))
	out := make([]T, 0, len(set))
	for _, v := range set {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
