package http

import (
	"comment-srv/internal/comment"
	"comment-srv/internal/model"
	"comment-srv/pkg/paginator"
)

// =====================================================
// Request DTOs
// =====================================================

type listReq struct {
	Search     string   `form:"search"`
	Status     string   `form:"status"`
	Platforms  []string `form:"platform"`
	Emotions   []string `form:"emotion"`
	Sentiments []string `form:"sentiment"`
	Categories []string `form:"category"`
	Page       int      `form:"page"`
	Limit      int      `form:"limit"`
}

func (r listReq) toInput() comment.ListInput {
	return comment.ListInput{
		Criteria: toCriteria(criteriaReq{
			Search:     r.Search,
			Status:     r.Status,
			Platforms:  r.Platforms,
			Emotions:   r.Emotions,
			Sentiments: r.Sentiments,
			Categories: r.Categories,
		}),
		Paginate: paginator.Query{Page: r.Page, Limit: r.Limit},
	}
}

type criteriaReq struct {
	Search     string   `json:"search"`
	Status     string   `json:"status"`
	Platforms  []string `json:"platforms"`
	Emotions   []string `json:"emotions"`
	Sentiments []string `json:"sentiments"`
	Categories []string `json:"categories"`
}

func toCriteria(r criteriaReq) model.FilterCriteria {
	c := model.DefaultFilterCriteria()
	c.Search = r.Search
	if r.Status != "" {
		c.Status = model.Status(r.Status)
	}
	for _, v := range r.Platforms {
		c.Platforms = append(c.Platforms, model.Platform(v))
	}
	for _, v := range r.Emotions {
		c.Emotions = append(c.Emotions, model.Emotion(v))
	}
	for _, v := range r.Sentiments {
		c.Sentiments = append(c.Sentiments, model.Sentiment(v))
	}
	for _, v := range r.Categories {
		c.Categories = append(c.Categories, model.Category(v))
	}
	return c
}

type loadMoreReq struct {
	Criteria criteriaReq `json:"criteria"`
	Loaded   int         `json:"loaded" binding:"min=0"`
}

func (r loadMoreReq) toInput() comment.LoadMoreInput {
	return comment.LoadMoreInput{Criteria: toCriteria(r.Criteria), Loaded: r.Loaded}
}

type actReq struct {
	CommentID string `json:"-"`
	Action    string `json:"action" binding:"required"`
}

func (r actReq) toInput() comment.ActInput {
	return comment.ActInput{CommentID: r.CommentID, Action: comment.Action(r.Action)}
}

type bulkActReq struct {
	IDs    []string `json:"ids"`
	Action string   `json:"action" binding:"required"`
}

func (r bulkActReq) toInput() comment.BulkActInput {
	return comment.BulkActInput{IDs: r.IDs, Action: comment.Action(r.Action)}
}

type ingestReq struct {
	UserID   string          `json:"user_id"`
	Comments []model.Comment `json:"comments"`
	Posts    []model.Post    `json:"posts"`
}

func (r ingestReq) toInput() comment.IngestInput {
	return comment.IngestInput{Comments: r.Comments, Posts: r.Posts}
}

// =====================================================
// Response DTOs
// =====================================================

type authorResp struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type commentResp struct {
	ID             string     `json:"id"`
	PostID         string     `json:"post_id"`
	Platform       string     `json:"platform"`
	Author         authorResp `json:"author"`
	Text           string     `json:"text"`
	Preview        string     `json:"preview,omitempty"`
	Truncated      bool       `json:"truncated,omitempty"`
	Time           string     `json:"time"`
	Emotion        string     `json:"emotion"`
	Sentiment      string     `json:"sentiment"`
	Category       string     `json:"category"`
	Flagged        bool       `json:"flagged"`
	NeedsAttention bool       `json:"needs_attention"`
	Archived       bool       `json:"archived"`
	Saved          bool       `json:"saved"`
	Important      bool       `json:"important"`
	Likes          int        `json:"likes"`
	Replies        int        `json:"replies"`
}

type toastResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

type listResp struct {
	Items     []commentResp      `json:"items"`
	Paginator paginator.Response `json:"paginator"`
	Empty     bool               `json:"empty"`
}

type loadMoreResp struct {
	Items   []commentResp `json:"items"`
	Loaded  int           `json:"loaded"`
	HasMore bool          `json:"has_more"`
}

type actResp struct {
	Comment commentResp `json:"comment"`
	Toast   toastResp   `json:"toast"`
}

type bulkActResp struct {
	Affected int       `json:"affected"`
	Toast    toastResp `json:"toast"`
}

type ingestResp struct {
	Comments int `json:"comments"`
	Posts    int `json:"posts"`
}

func newCommentResp(c model.Comment) commentResp {
	return commentResp{
		ID:             c.ID,
		PostID:         c.PostID,
		Platform:       string(c.Platform),
		Author:         authorResp{Name: c.Author.Name, Avatar: c.Author.Avatar},
		Text:           c.Text,
		Time:           c.Time,
		Emotion:        string(c.Emotion),
		Sentiment:      string(c.Sentiment),
		Category:       string(c.Category),
		Flagged:        c.Flagged,
		NeedsAttention: c.NeedsAttention,
		Archived:       c.Archived,
		Saved:          c.Saved,
		Important:      c.Important,
		Likes:          c.Likes,
		Replies:        c.Replies,
	}
}

func newItemsResp(items []comment.Item) []commentResp {
	out := make([]commentResp, 0, len(items))
	for _, it := range items {
		r := newCommentResp(it.Comment)
		r.Preview = it.Preview
		r.Truncated = it.Truncated
		out = append(out, r)
	}
	return out
}

func newToastResp(t model.Toast) toastResp {
	return toastResp{ID: t.ID, Title: t.Title, Description: t.Description, Variant: string(t.Variant)}
}

func (h *handler) newListResp(o comment.ListOutput) listResp {
	return listResp{
		Items:     newItemsResp(o.Items),
		Paginator: o.Paginator.ToResponse(),
		Empty:     o.Empty,
	}
}

func (h *handler) newLoadMoreResp(o comment.LoadMoreOutput) loadMoreResp {
	return loadMoreResp{Items: newItemsResp(o.Items), Loaded: o.Loaded, HasMore: o.HasMore}
}

func (h *handler) newActResp(o comment.ActOutput) actResp {
	return actResp{Comment: newCommentResp(o.Comment), Toast: newToastResp(o.Toast)}
}

func (h *handler) newBulkActResp(o comment.BulkActOutput) bulkActResp {
	return bulkActResp{Affected: o.Affected, Toast: newToastResp(o.Toast)}
}
