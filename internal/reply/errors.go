package reply

import "errors"

var (
	ErrNoRecipients      = errors.New("reply: no recipients")
	ErrNoDraft           = errors.New("reply: no open draft")
	ErrInvalidIntent     = errors.New("reply: invalid intent")
	ErrInvalidSuggestion = errors.New("reply: suggestion out of range")
	ErrInvalidTool       = errors.New("reply: invalid tool")
	ErrEmptyReply        = errors.New("reply: empty reply")
	ErrAlreadySubmitting = errors.New("reply: already submitting")
	ErrDispatchFailed    = errors.New("reply: dispatch failed")
	ErrInvalidDelivery   = errors.New("reply: invalid delivery")
	ErrStoreFailed       = errors.New("reply: store unavailable")
)
