package usecase

import (
	"context"
	"sort"

	"comment-srv/internal/dashboard"
	"comment-srv/internal/model"
)

// Catalog - Sidebar options with their comment counts
func (uc *implUseCase) Catalog(ctx context.Context, sc model.Scope) (dashboard.CatalogOutput, error) {
	stats, err := uc.commentUC.Stats(ctx, sc)
	if err != nil {
		return dashboard.CatalogOutput{}, err
	}

	out := dashboard.CatalogOutput{Total: stats.Total}
	for _, v := range model.Statuses {
		out.Statuses = append(out.Statuses, dashboard.CatalogOption{CatalogEntry: model.StatusInfo(v), Count: stats.Statuses[v]})
	}
	for _, v := range model.Platforms {
		out.Platforms = append(out.Platforms, dashboard.CatalogOption{CatalogEntry: model.PlatformInfo(v), Count: stats.Platforms[v]})
	}
	for _, v := range model.Emotions {
		out.Emotions = append(out.Emotions, dashboard.CatalogOption{CatalogEntry: model.EmotionInfo(v), Count: stats.Emotions[v]})
	}
	for _, v := range model.Sentiments {
		out.Sentiments = append(out.Sentiments, dashboard.CatalogOption{CatalogEntry: model.SentimentInfo(v), Count: stats.Sentiments[v]})
	}

	// Known categories first, then any ingested extra ones by name.
	for _, v := range model.Categories {
		out.Categories = append(out.Categories, dashboard.CatalogOption{CatalogEntry: model.CategoryInfo(v), Count: stats.Categories[v]})
	}
	var extra []model.Category
	for c := range stats.Categories {
		if !isKnownCategory(c) {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	for _, v := range extra {
		out.Categories = append(out.Categories, dashboard.CatalogOption{CatalogEntry: model.CategoryInfo(v), Count: stats.Categories[v]})
	}
	return out, nil
}

func isKnownCategory(c model.Category) bool {
	for _, v := range model.Categories {
		if v == c {
			return true
		}
	}
	return false
}
