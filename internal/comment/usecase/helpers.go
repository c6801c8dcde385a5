package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"comment-srv/internal/comment"
	"comment-srv/internal/comment/repository"
	"comment-srv/internal/model"

	"github.com/PuerkitoBio/goquery"
)

// loadStore returns the user's comments, cache first.
func (uc *implUseCase) loadStore(ctx context.Context, sc model.Scope) ([]model.Comment, error) {
	cached, err := uc.cache.GetStore(ctx, sc.UserID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		uc.l.Warnf(ctx, "comment.usecase.loadStore: cache read failed: %v", err)
	}

	comments, err := uc.repo.ListComments(ctx, repository.ListOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "comment.usecase.loadStore: ListComments failed: %v", err)
		return nil, fmt.Errorf("%w: %v", comment.ErrStoreFailed, err)
	}

	if err := uc.cache.SaveStore(ctx, sc.UserID, comments); err != nil {
		uc.l.Warnf(ctx, "comment.usecase.loadStore: cache write failed: %v", err)
	}
	return comments, nil
}

func (uc *implUseCase) invalidate(ctx context.Context, sc model.Scope) {
	if err := uc.cache.InvalidateStore(ctx, sc.UserID); err != nil {
		uc.l.Warnf(ctx, "comment.usecase.invalidate: %v", err)
	}
}

func (uc *implUseCase) toItems(comments []model.Comment) []comment.Item {
	items := make([]comment.Item, 0, len(comments))
	for _, c := range comments {
		preview, truncated := truncate(c.Text, uc.cfg.PreviewLength)
		items = append(items, comment.Item{Comment: c, Preview: preview, Truncated: truncated})
	}
	return items
}

func truncate(text string, n int) (string, bool) {
	r := []rune(text)
	if len(r) <= n {
		return text, false
	}
	return string(r[:n]) + "...", true
}

func shortID(id string) string {
	r := []rune(id)
	if len(r) > 8 {
		r = r[:8]
	}
	return string(r) + "..."
}

var actionTitles = map[comment.Action]string{
	comment.ActionFlag:      "Comment flagged for review",
	comment.ActionArchive:   "Comment archived",
	comment.ActionSave:      "Comment saved for later",
	comment.ActionDelete:    "Comment deleted",
	comment.ActionImportant: "Comment marked as important",
}

var actionFlags = map[comment.Action]repository.Flag{
	comment.ActionFlag:      repository.FlagFlagged,
	comment.ActionArchive:   repository.FlagArchived,
	comment.ActionSave:      repository.FlagSaved,
	comment.ActionImportant: repository.FlagImportant,
}

// stripHTML reduces platform markup to its visible text.
func stripHTML(s string) (string, error) {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s), nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return "", err
	}
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("script, style").Remove()
	return strings.TrimSpace(doc.Text()), nil
}

func validateComment(c model.Comment) error {
	if c.PostID == "" || c.Text == "" || c.Category == "" {
		return comment.ErrInvalidComment
	}
	if !c.Platform.IsValid() || !c.Emotion.IsValid() || !c.Sentiment.IsValid() {
		return comment.ErrInvalidComment
	}
	if c.Likes < 0 || c.Replies < 0 {
		return comment.ErrInvalidComment
	}
	return nil
}
