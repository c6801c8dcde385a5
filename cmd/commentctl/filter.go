package main

import (
	"fmt"
	"io"

	"comment-srv/internal/comment"
	"comment-srv/internal/model"

	"github.com/spf13/cobra"
)

var filterFlags struct {
	search     string
	status     string
	platforms  []string
	emotions   []string
	sentiments []string
	categories []string
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Print the ids of fixture comments matching the given criteria",
	Example: `  commentctl filter -f fixtures.yaml --status flagged --platform youtube --platform tiktok
  commentctl filter -f fixtures.yaml --search refund --sentiment negative`,
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := buildCriteria()
		if err != nil {
			return err
		}
		fx, err := loadFixtures(fixturesFile)
		if err != nil {
			return err
		}
		return printFiltered(cmd.OutOrStdout(), fx.Comments, criteria)
	},
}

func init() {
	f := filterCmd.Flags()
	f.StringVar(&filterFlags.search, "search", "", "Case-insensitive substring of the comment text")
	f.StringVar(&filterFlags.status, "status", string(model.StatusAll), "all, flagged, attention or archived")
	f.StringSliceVar(&filterFlags.platforms, "platform", nil, "Platform to include (repeatable)")
	f.StringSliceVar(&filterFlags.emotions, "emotion", nil, "Emotion to include (repeatable)")
	f.StringSliceVar(&filterFlags.sentiments, "sentiment", nil, "Sentiment to include (repeatable)")
	f.StringSliceVar(&filterFlags.categories, "category", nil, "Category to include (repeatable)")
}

func buildCriteria() (model.FilterCriteria, error) {
	c := model.DefaultFilterCriteria()
	c.Search = filterFlags.search

	status := model.Status(filterFlags.status)
	if !status.IsValid() {
		return c, fmt.Errorf("unknown status %q", filterFlags.status)
	}
	c.Status = status

	for _, v := range filterFlags.platforms {
		p := model.Platform(v)
		if !p.IsValid() {
			return c, fmt.Errorf("unknown platform %q", v)
		}
		c.Platforms = append(c.Platforms, p)
	}
	for _, v := range filterFlags.emotions {
		e := model.Emotion(v)
		if !e.IsValid() {
			return c, fmt.Errorf("unknown emotion %q", v)
		}
		c.Emotions = append(c.Emotions, e)
	}
	for _, v := range filterFlags.sentiments {
		s := model.Sentiment(v)
		if !s.IsValid() {
			return c, fmt.Errorf("unknown sentiment %q", v)
		}
		c.Sentiments = append(c.Sentiments, s)
	}
	for _, v := range filterFlags.categories {
		c.Categories = append(c.Categories, model.Category(v))
	}
	return c, nil
}

func printFiltered(w io.Writer, comments []model.Comment, criteria model.FilterCriteria) error {
	matched := comment.Filter(comments, criteria)
	for _, c := range matched {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Platform, c.Author.Name); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d of %d comments\n", len(matched), len(comments))
	return err
}
