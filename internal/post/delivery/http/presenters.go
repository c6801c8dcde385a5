package http

import (
	"comment-srv/internal/model"
	"comment-srv/internal/post"
)

type postResp struct {
	ID        string `json:"id"`
	Platform  string `json:"platform"`
	Title     string `json:"title"`
	Caption   string `json:"caption,omitempty"`
	Thumbnail string `json:"thumbnail"`
	Date      string `json:"date"`
	Likes     int    `json:"likes"`
	Comments  int    `json:"comments"`
	Views     int    `json:"views"`
}

type previewResp struct {
	Found         bool      `json:"found"`
	Message       string    `json:"message,omitempty"`
	Post          *postResp `json:"post,omitempty"`
	PlatformLabel string    `json:"platform_label,omitempty"`
	PlatformIcon  string    `json:"platform_icon,omitempty"`
	ReplyCount    int       `json:"reply_count"`
}

func newPostResp(p model.Post) postResp {
	return postResp{
		ID:        p.ID,
		Platform:  string(p.Platform),
		Title:     p.Title,
		Caption:   p.Caption,
		Thumbnail: p.Thumbnail,
		Date:      p.Date,
		Likes:     p.Likes,
		Comments:  p.Comments,
		Views:     p.Views,
	}
}

func (h *handler) newPreviewResp(o post.PreviewOutput) previewResp {
	resp := previewResp{
		Found:         o.Found,
		Message:       o.Message,
		PlatformLabel: o.PlatformLabel,
		PlatformIcon:  o.PlatformIcon,
		ReplyCount:    o.ReplyCount,
	}
	if o.Found {
		p := newPostResp(o.Post)
		resp.Post = &p
	}
	return resp
}
