package http

import (
	"time"

	"comment-srv/internal/model"
	"comment-srv/internal/reply"
)

type openReq struct {
	CommentIDs []string `json:"comment_ids"`
	// FromSelection replies to the dashboard selection; comment_ids is then ignored.
	FromSelection bool `json:"from_selection"`
}

func (r openReq) toInput() reply.OpenInput {
	return reply.OpenInput{CommentIDs: r.CommentIDs, FromSelection: r.FromSelection}
}

type intentReq struct {
	Intent string `json:"intent" binding:"required"`
}

type suggestionReq struct {
	Index *int `json:"index" binding:"required"`
}

type bufferReq struct {
	Text string `json:"text"`
}

type toolReq struct {
	Tool string `json:"tool" binding:"required"`
}

type draftResp struct {
	Stage          string   `json:"stage"`
	Intent         string   `json:"intent"`
	Suggestions    []string `json:"suggestions"`
	Suggestion     string   `json:"suggestion"`
	Buffer         string   `json:"buffer"`
	Recipients     []string `json:"recipients"`
	RecipientCount int      `json:"recipient_count"`
	Bulk           bool     `json:"bulk"`
	AuthorName     string   `json:"author_name,omitempty"`
	Edited         bool     `json:"edited"`
}

func newDraftResp(d reply.Draft) draftResp {
	return draftResp{
		Stage:          string(d.Stage),
		Intent:         string(d.Intent),
		Suggestions:    d.Suggestions,
		Suggestion:     d.Suggestion,
		Buffer:         d.Buffer,
		Recipients:     d.Recipients,
		RecipientCount: len(d.Recipients),
		Bulk:           d.Bulk,
		AuthorName:     d.AuthorName,
		Edited:         d.Edited(),
	}
}

type toastResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Variant     string `json:"variant"`
}

type submitResp struct {
	Sent  int       `json:"sent"`
	Toast toastResp `json:"toast"`
}

func newSubmitResp(o reply.SubmitOutput) submitResp {
	return submitResp{
		Sent: o.Sent,
		Toast: toastResp{
			ID:          o.Toast.ID,
			Title:       o.Toast.Title,
			Description: o.Toast.Description,
			Variant:     string(o.Toast.Variant),
		},
	}
}

type replyAuthorResp struct {
	Name    string `json:"name"`
	Avatar  string `json:"avatar,omitempty"`
	IsOwner bool   `json:"is_owner"`
}

type replyResp struct {
	ID            string          `json:"id"`
	Author        replyAuthorResp `json:"author"`
	Text          string          `json:"text"`
	Time          string          `json:"time"`
	TimeTooltip   string          `json:"time_tooltip"`
	Likes         int             `json:"likes"`
	IsAIGenerated bool            `json:"is_ai_generated"`
	CreatedAt     time.Time       `json:"created_at"`
}

type threadResp struct {
	CommentID string      `json:"comment_id"`
	Replies   []replyResp `json:"replies"`
}

func newThreadResp(commentID string, replies []model.Reply) threadResp {
	out := threadResp{CommentID: commentID, Replies: make([]replyResp, 0, len(replies))}
	for _, r := range replies {
		out.Replies = append(out.Replies, replyResp{
			ID:            r.ID,
			Author:        replyAuthorResp{Name: r.Author.Name, Avatar: r.Author.Avatar, IsOwner: r.Author.IsOwner},
			Text:          r.Text,
			Time:          r.Time,
			TimeTooltip:   r.TimeTooltip,
			Likes:         r.Likes,
			IsAIGenerated: r.IsAIGenerated,
			CreatedAt:     r.CreatedAt,
		})
	}
	return out
}
