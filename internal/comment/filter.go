package comment

import (
	"strings"

	"comment-srv/internal/model"
)

// Filter returns the comments matching criteria in their original order.
// The result is never nil.
func Filter(comments []model.Comment, criteria model.FilterCriteria) []model.Comment {
	search := strings.ToLower(criteria.Search)
	out := make([]model.Comment, 0, len(comments))
	for _, c := range comments {
		if matches(c, criteria, search) {
			out = append(out, c)
		}
	}
	return out
}

// Matches reports whether a single comment passes every predicate.
func Matches(c model.Comment, criteria model.FilterCriteria) bool {
	return matches(c, criteria, strings.ToLower(criteria.Search))
}

func matches(c model.Comment, criteria model.FilterCriteria, lowerSearch string) bool {
	if lowerSearch != "" && !strings.Contains(strings.ToLower(c.Text), lowerSearch) {
		return false
	}
	if !matchStatus(c, criteria.Status) {
		return false
	}
	return in(criteria.Platforms, c.Platform) &&
		in(criteria.Emotions, c.Emotion) &&
		in(criteria.Sentiments, c.Sentiment) &&
		in(criteria.Categories, c.Category)
}

// Each status checks its own flag, so a comment can match several statuses.
func matchStatus(c model.Comment, s model.Status) bool {
	switch s {
	case model.StatusFlagged:
		return c.Flagged
	case model.StatusAttention:
		return c.NeedsAttention
	case model.StatusArchived:
		return c.Archived
	default:
		return true
	}
}

// in is true when set is empty or contains v.
func in[T comparable](set []T, v T) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// ValidateCriteria rejects unknown enumerated values. Categories are free-form.
func ValidateCriteria(criteria model.FilterCriteria) error {
	if criteria.Status != "" && !criteria.Status.IsValid() {
		return ErrInvalidCriteria
	}
	for _, p := range criteria.Platforms {
		if !p.IsValid() {
			return ErrInvalidCriteria
		}
	}
	for _, e := range criteria.Emotions {
		if !e.IsValid() {
			return ErrInvalidCriteria
		}
	}
	for _, s := range criteria.Sentiments {
		if !s.IsValid() {
			return ErrInvalidCriteria
		}
	}
	return nil
}
