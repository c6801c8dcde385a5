package dashboard

import (
	"time"

	"comment-srv/internal/comment"
	"comment-srv/internal/model"
	"comment-srv/internal/reply"
)

const DefaultSessionTTL = 24 * time.Hour

// Session is the per-user dashboard state.
type Session struct {
	Criteria  model.FilterCriteria `json:"criteria"`
	Selection Selection            `json:"selection"`
	Cursor    int                  `json:"cursor"`
	// ComposerOpen is derived from the reply draft and never stored.
	ComposerOpen bool `json:"-"`
}

// NewSession is the state of a user who has not touched the dashboard yet.
func NewSession() Session {
	return Session{
		Criteria:  model.DefaultFilterCriteria(),
		Selection: Selection{},
		Cursor:    NoCursor,
	}
}

type FilterInput struct {
	Dimension Dimension
	Value     string
}

type NavigateOutput struct {
	Cursor       int
	CommentID    string
	ComposerOpen bool
	// Draft is set when Enter opened the composer.
	Draft *reply.Draft
}

type BulkActOutput struct {
	Result  comment.BulkActOutput
	Session Session
}

// CatalogOption is a sidebar entry with its comment count.
type CatalogOption struct {
	model.CatalogEntry
	Count int
}

type CatalogOutput struct {
	Total      int
	Statuses   []CatalogOption
	Platforms  []CatalogOption
	Emotions   []CatalogOption
	Sentiments []CatalogOption
	Categories []CatalogOption
}
