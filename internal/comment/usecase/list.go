package usecase

import (
	"context"
	"errors"
	"fmt"

	"comment-srv/internal/comment"
	"comment-srv/internal/comment/repository"
	"comment-srv/internal/model"
	"comment-srv/pkg/paginator"
)

// List - One page of the filtered feed
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input comment.ListInput) (comment.ListOutput, error) {
	if err := comment.ValidateCriteria(input.Criteria); err != nil {
		return comment.ListOutput{}, err
	}

	store, err := uc.loadStore(ctx, sc)
	if err != nil {
		return comment.ListOutput{}, err
	}
	filtered := comment.Filter(store, input.Criteria)

	page, meta := paginator.Slice(filtered, input.Paginate.Normalize(uc.cfg.PageSize))

	return comment.ListOutput{
		Items:     uc.toItems(page),
		Paginator: meta,
		Empty:     len(filtered) == 0,
	}, nil
}

// LoadMore - Next slice of the infinite feed, capped at FeedLimit
func (uc *implUseCase) LoadMore(ctx context.Context, sc model.Scope, input comment.LoadMoreInput) (comment.LoadMoreOutput, error) {
	if err := comment.ValidateCriteria(input.Criteria); err != nil {
		return comment.LoadMoreOutput{}, err
	}
	loaded := input.Loaded
	if loaded < 0 {
		loaded = 0
	}
	if loaded >= uc.cfg.FeedLimit {
		return comment.LoadMoreOutput{Items: []comment.Item{}, Loaded: loaded, HasMore: false}, nil
	}

	store, err := uc.loadStore(ctx, sc)
	if err != nil {
		return comment.LoadMoreOutput{}, err
	}
	filtered := comment.Filter(store, input.Criteria)

	w := paginator.Window{Loaded: loaded, Step: uc.cfg.PageSize, Cap: uc.cfg.FeedLimit}
	start, end, hasMore := w.Advance(len(filtered))

	return comment.LoadMoreOutput{
		Items:   uc.toItems(filtered[start:end]),
		Loaded:  end,
		HasMore: hasMore,
	}, nil
}

// VisibleIDs - Ids of the filtered feed, used by select-all and navigation
func (uc *implUseCase) VisibleIDs(ctx context.Context, sc model.Scope, criteria model.FilterCriteria) ([]string, error) {
	if err := comment.ValidateCriteria(criteria); err != nil {
		return nil, err
	}
	store, err := uc.loadStore(ctx, sc)
	if err != nil {
		return nil, err
	}
	return model.CommentIDs(comment.Filter(store, criteria)), nil
}

// Detail - A single comment
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Comment, error) {
	c, err := uc.repo.GetComment(ctx, repository.GetOptions{UserID: sc.UserID, ID: id})
	if errors.Is(err, repository.ErrNotFound) {
		return model.Comment{}, comment.ErrNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "comment.usecase.Detail: GetComment failed: %v", err)
		return model.Comment{}, fmt.Errorf("%w: %v", comment.ErrStoreFailed, err)
	}
	return c, nil
}

// Stats - Sidebar counters over the whole store
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (comment.StatsOutput, error) {
	store, err := uc.loadStore(ctx, sc)
	if err != nil {
		return comment.StatsOutput{}, err
	}

	out := comment.StatsOutput{
		Total:      len(store),
		Statuses:   map[model.Status]int{model.StatusAll: len(store)},
		Platforms:  map[model.Platform]int{},
		Emotions:   map[model.Emotion]int{},
		Sentiments: map[model.Sentiment]int{},
		Categories: map[model.Category]int{},
	}
	for _, c := range store {
		if c.Flagged {
			out.Statuses[model.StatusFlagged]++
		}
		if c.NeedsAttention {
			out.Statuses[model.StatusAttention]++
		}
		if c.Archived {
			out.Statuses[model.StatusArchived]++
		}
		out.Platforms[c.Platform]++
		out.Emotions[c.Emotion]++
		out.Sentiments[c.Sentiment]++
		out.Categories[c.Category]++
	}
	return out, nil
}
