package reply

import (
	"strings"

	"github.com/google/uuid"
)

// Stage is the composer lifecycle position.
type Stage string

const (
	StageChoosingIntent Stage = "choosing_intent"
	StageReviewing      Stage = "reviewing"
	StageEditing        Stage = "editing"
	StageSubmitting     Stage = "submitting"
	StageClosed         Stage = "closed"
)

// Draft is the composer state of one user.
//
// Suggestion is the text last picked from Suggestions; Buffer is what will be sent.
// PreSubmit is set only while Stage is submitting. A FromSelection draft re-reads
// its recipients from the selection on every submit.
type Draft struct {
	Stage         Stage    `json:"stage"`
	Intent        Intent   `json:"intent"`
	Suggestions   []string `json:"suggestions"`
	Suggestion    string   `json:"suggestion"`
	Buffer        string   `json:"buffer"`
	Recipients    []string `json:"recipients"`
	Bulk          bool     `json:"bulk"`
	FromSelection bool     `json:"from_selection,omitempty"`
	// SubmissionID survives failed submits so retries reuse reply ids.
	SubmissionID string `json:"submission_id,omitempty"`
	AuthorName   string `json:"author_name,omitempty"`
	PreSubmit    *Draft `json:"pre_submit,omitempty"`
}

// NewDraft opens the composer for recipients with the first thank-you suggestion.
func NewDraft(recipients []string, fromSelection bool, authorName string) Draft {
	d := Draft{
		Stage:      StageChoosingIntent,
		Recipients: dedupe(recipients),
		AuthorName: authorName,
	}
	d.FromSelection = fromSelection
	d.Bulk = fromSelection || len(d.Recipients) > 1
	d.setIntent(IntentThank)
	return d
}

func (d *Draft) setIntent(i Intent) {
	d.Intent = i
	d.Suggestions = CannedReplies(i)
	d.Suggestion = d.Suggestions[0]
	d.Buffer = d.Suggestion
	d.Stage = StageReviewing
}

func (d *Draft) mutable() error {
	switch d.Stage {
	case StageSubmitting:
		return ErrAlreadySubmitting
	case StageClosed:
		return ErrNoDraft
	}
	return nil
}

// ChangeIntent resets the suggestions and discards any edits.
func (d *Draft) ChangeIntent(i Intent) error {
	if err := d.mutable(); err != nil {
		return err
	}
	if !i.IsValid() {
		return ErrInvalidIntent
	}
	d.setIntent(i)
	return nil
}

// SelectSuggestion replaces the buffer with suggestion idx.
func (d *Draft) SelectSuggestion(idx int) error {
	if err := d.mutable(); err != nil {
		return err
	}
	if idx < 0 || idx >= len(d.Suggestions) {
		return ErrInvalidSuggestion
	}
	d.Suggestion = d.Suggestions[idx]
	d.Buffer = d.Suggestion
	d.Stage = StageReviewing
	return nil
}

// SetSuggestions swaps the list without touching the buffer.
func (d *Draft) SetSuggestions(s []string) error {
	if err := d.mutable(); err != nil {
		return err
	}
	if len(s) == 0 {
		return ErrInvalidSuggestion
	}
	d.Suggestions = s
	return nil
}

func (d *Draft) Edit(text string) error {
	if err := d.mutable(); err != nil {
		return err
	}
	d.Buffer = text
	d.Stage = StageEditing
	return nil
}

// ApplyTool rewrites the current buffer, so tools stack.
func (d *Draft) ApplyTool(t Tool) error {
	if err := d.mutable(); err != nil {
		return err
	}
	out, ok := t.Transform(d.Buffer)
	if !ok {
		return ErrInvalidTool
	}
	d.Buffer = out
	d.Stage = StageEditing
	return nil
}

// ReplyID is stable for one submission, recipient and text, so a retried
// dispatch is recorded once. Editing the text yields new ids.
func (d Draft) ReplyID(commentID string) string {
	name := d.SubmissionID + "\x00" + commentID + "\x00" + d.Buffer
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

// Edited reports whether the buffer differs from the picked suggestion.
func (d Draft) Edited() bool {
	return d.Buffer != d.Suggestion
}

// BeginSubmit snapshots the draft and moves to submitting.
func (d *Draft) BeginSubmit() error {
	if d.Stage == StageSubmitting {
		return ErrAlreadySubmitting
	}
	if d.Stage == StageClosed {
		return ErrNoDraft
	}
	if strings.TrimSpace(d.Buffer) == "" {
		return ErrEmptyReply
	}
	snap := d.clone()
	d.PreSubmit = &snap
	d.Stage = StageSubmitting
	return nil
}

// FailSubmit restores the pre-submit snapshot exactly.
func (d *Draft) FailSubmit() {
	if d.PreSubmit == nil {
		return
	}
	*d = *d.PreSubmit
}

// Close ends the draft. Used for both completed submits and cancels.
func (d *Draft) Close() {
	*d = Draft{Stage: StageClosed}
}

func (d Draft) clone() Draft {
	c := d
	c.Suggestions = append([]string(nil), d.Suggestions...)
	c.Recipients = append([]string(nil), d.Recipients...)
	c.PreSubmit = nil
	return c
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
