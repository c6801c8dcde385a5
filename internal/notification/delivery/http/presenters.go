package http

import (
	"time"

	"comment-srv/internal/model"
	"comment-srv/internal/notification"
)

type pushReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

func (r pushReq) toInput() notification.PushInput {
	return notification.PushInput{
		Title:       r.Title,
		Description: r.Description,
		Variant:     model.ToastVariant(r.Variant),
	}
}

type toastResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Variant     string    `json:"variant"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func newToastResp(t model.Toast) toastResp {
	return toastResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Variant:     string(t.Variant),
		ExpiresAt:   t.ExpiresAt,
	}
}

func newToastsResp(ts []model.Toast) []toastResp {
	out := make([]toastResp, 0, len(ts))
	for _, t := range ts {
		out = append(out, newToastResp(t))
	}
	return out
}
