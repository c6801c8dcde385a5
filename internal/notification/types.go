package notification

import (
	"time"

	"comment-srv/internal/model"
)

const (
	DefaultTTL   = 3 * time.Second
	ExchangeName = "notification.toast"
	IDLength     = 7
)

type PushInput struct {
	Title       string
	Description string
	Variant     model.ToastVariant
}

// Event is the message published for real-time clients.
type Event struct {
	Type  string      `json:"type"`
	Toast model.Toast `json:"toast"`
}

const (
	EventPushed    = "toast.pushed"
	EventDismissed = "toast.dismissed"
)
