package http

import (
	"comment-srv/internal/comment"
	"comment-srv/internal/dashboard"
	"comment-srv/internal/model"
	"comment-srv/internal/reply"
)

// =====================================================
// Request DTOs
// =====================================================

// filtersReq leaves absent fields untouched; an empty list clears the dimension.
type filtersReq struct {
	Search     *string   `json:"search"`
	Status     *string   `json:"status"`
	Platforms  *[]string `json:"platforms"`
	Emotions   *[]string `json:"emotions"`
	Sentiments *[]string `json:"sentiments"`
	Categories *[]string `json:"categories"`
}

func (r filtersReq) toPatch() dashboard.CriteriaPatch {
	p := dashboard.CriteriaPatch{Search: r.Search}
	if r.Status != nil {
		s := model.Status(*r.Status)
		p.Status = &s
	}
	if r.Platforms != nil {
		p.Platforms = convert[model.Platform](*r.Platforms)
	}
	if r.Emotions != nil {
		p.Emotions = convert[model.Emotion](*r.Emotions)
	}
	if r.Sentiments != nil {
		p.Sentiments = convert[model.Sentiment](*r.Sentiments)
	}
	if r.Categories != nil {
		p.Categories = convert[model.Category](*r.Categories)
	}
	return p
}

func convert[T ~string](in []string) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, T(v))
	}
	return out
}

type filterReq struct {
	Dimension string `json:"dimension" binding:"required"`
	Value     string `json:"value"`
}

func (r filterReq) toInput() dashboard.FilterInput {
	return dashboard.FilterInput{Dimension: dashboard.Dimension(r.Dimension), Value: r.Value}
}

type selectionReq struct {
	CommentID string `json:"comment_id" binding:"required"`
}

type navigateReq struct {
	Key string `json:"key" binding:"required"`
}

type bulkActReq struct {
	Action string `json:"action" binding:"required"`
}

// =====================================================
// Response DTOs
// =====================================================

type criteriaResp struct {
	Search     string   `json:"search"`
	Status     string   `json:"status"`
	Platforms  []string `json:"platforms"`
	Emotions   []string `json:"emotions"`
	Sentiments []string `json:"sentiments"`
	Categories []string `json:"categories"`
}

type pillResp struct {
	Dimension string `json:"dimension"`
	Value     string `json:"value"`
	Label     string `json:"label"`
}

type sessionResp struct {
	Criteria      criteriaResp `json:"criteria"`
	ActiveFilters []pillResp   `json:"active_filters"`
	Selection     []string     `json:"selection"`
	SelectedCount int          `json:"selected_count"`
	Cursor        int          `json:"cursor"`
	ComposerOpen  bool         `json:"composer_open"`
}

func strs[T ~string](in []T) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, string(v))
	}
	return out
}

func newSessionResp(s dashboard.Session) sessionResp {
	pills := dashboard.ActiveFilters(s.Criteria)
	resp := sessionResp{
		Criteria: criteriaResp{
			Search:     s.Criteria.Search,
			Status:     string(s.Criteria.Status),
			Platforms:  strs(s.Criteria.Platforms),
			Emotions:   strs(s.Criteria.Emotions),
			Sentiments: strs(s.Criteria.Sentiments),
			Categories: strs(s.Criteria.Categories),
		},
		ActiveFilters: make([]pillResp, 0, len(pills)),
		Selection:     s.Selection.IDs(),
		SelectedCount: len(s.Selection),
		Cursor:        s.Cursor,
		ComposerOpen:  s.ComposerOpen,
	}
	for _, p := range pills {
		resp.ActiveFilters = append(resp.ActiveFilters, pillResp{Dimension: string(p.Dimension), Value: p.Value, Label: p.Label})
	}
	return resp
}

type draftResp struct {
	Stage      string   `json:"stage"`
	Intent     string   `json:"intent"`
	Buffer     string   `json:"buffer"`
	Recipients []string `json:"recipients"`
	Bulk       bool     `json:"bulk"`
	AuthorName string   `json:"author_name,omitempty"`
}

type navigateResp struct {
	Cursor       int        `json:"cursor"`
	CommentID    string     `json:"comment_id,omitempty"`
	ComposerOpen bool       `json:"composer_open"`
	Draft        *draftResp `json:"draft,omitempty"`
}

func newNavigateResp(o dashboard.NavigateOutput) navigateResp {
	resp := navigateResp{Cursor: o.Cursor, CommentID: o.CommentID, ComposerOpen: o.ComposerOpen}
	if o.Draft != nil {
		resp.Draft = newDraftResp(*o.Draft)
	}
	return resp
}

func newDraftResp(d reply.Draft) *draftResp {
	return &draftResp{
		Stage:      string(d.Stage),
		Intent:     string(d.Intent),
		Buffer:     d.Buffer,
		Recipients: d.Recipients,
		Bulk:       d.Bulk,
		AuthorName: d.AuthorName,
	}
}

type toastResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Variant     string `json:"variant"`
}

type bulkActResp struct {
	Affected int         `json:"affected"`
	Toast    toastResp   `json:"toast"`
	Session  sessionResp `json:"session"`
}

func newBulkActResp(o dashboard.BulkActOutput) bulkActResp {
	return bulkActResp{
		Affected: o.Result.Affected,
		Toast: toastResp{
			ID:          o.Result.Toast.ID,
			Title:       o.Result.Toast.Title,
			Description: o.Result.Toast.Description,
			Variant:     string(o.Result.Toast.Variant),
		},
		Session: newSessionResp(o.Session),
	}
}

type optionResp struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
}

type catalogResp struct {
	Total      int          `json:"total"`
	Statuses   []optionResp `json:"statuses"`
	Platforms  []optionResp `json:"platforms"`
	Emotions   []optionResp `json:"emotions"`
	Sentiments []optionResp `json:"sentiments"`
	Categories []optionResp `json:"categories"`
	Actions    []string     `json:"actions"`
}

func newOptionsResp(opts []dashboard.CatalogOption) []optionResp {
	out := make([]optionResp, 0, len(opts))
	for _, o := range opts {
		out = append(out, optionResp{
			Value:       o.Value,
			Label:       o.Label,
			Icon:        o.Icon,
			Description: o.Description,
			Count:       o.Count,
		})
	}
	return out
}

func newCatalogResp(o dashboard.CatalogOutput) catalogResp {
	return catalogResp{
		Total:      o.Total,
		Statuses:   newOptionsResp(o.Statuses),
		Platforms:  newOptionsResp(o.Platforms),
		Emotions:   newOptionsResp(o.Emotions),
		Sentiments: newOptionsResp(o.Sentiments),
		Categories: newOptionsResp(o.Categories),
		Actions: []string{
			string(comment.ActionFlag),
			string(comment.ActionArchive),
			string(comment.ActionSave),
			string(comment.ActionImportant),
			string(comment.ActionDelete),
		},
	}
}
