package comment

import (
	"time"

	"comment-srv/internal/model"
	"comment-srv/pkg/paginator"
)

const (
	DefaultFeedLimit     = 50
	DefaultPageSize      = 10
	DefaultPreviewLength = 180
	DefaultStoreCacheTTL = 5 * time.Minute
)

// Action is a per-comment operation from the feed.
type Action string

const (
	ActionFlag      Action = "flag"
	ActionArchive   Action = "archive"
	ActionSave      Action = "save"
	ActionDelete    Action = "delete"
	ActionImportant Action = "important"
)

// Item is a comment as shown in the feed.
type Item struct {
	model.Comment
	Preview   string
	Truncated bool
}

type ListInput struct {
	Criteria model.FilterCriteria
	Paginate paginator.Query
}

type ListOutput struct {
	Items     []Item
	Paginator paginator.Meta
	// Empty is true when no comment matches; it is a valid state, not an error.
	Empty bool
}

type LoadMoreInput struct {
	Criteria model.FilterCriteria
	Loaded   int
}

type LoadMoreOutput struct {
	Items   []Item
	Loaded  int
	HasMore bool
}

type ActInput struct {
	CommentID string
	Action    Action
}

type ActOutput struct {
	Comment model.Comment
	Toast   model.Toast
}

type BulkActInput struct {
	IDs    []string
	Action Action
}

type BulkActOutput struct {
	Affected int
	Toast    model.Toast
}

type IngestInput struct {
	Comments []model.Comment
	Posts    []model.Post
}

type IngestOutput struct {
	Comments int
	Posts    int
}

// StatsOutput holds per-value comment counts for the sidebar.
type StatsOutput struct {
	Total      int
	Statuses   map[model.Status]int
	Platforms  map[model.Platform]int
	Emotions   map[model.Emotion]int
	Sentiments map[model.Sentiment]int
	Categories map[model.Category]int
}
