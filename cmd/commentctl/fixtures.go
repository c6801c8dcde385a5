package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"comment-srv/internal/model"

	"gopkg.in/yaml.v3"
)

// fixtures is the on-disk shape of a seed file.
type fixtures struct {
	Posts    []model.Post    `yaml:"posts"`
	Comments []model.Comment `yaml:"comments"`
}

func loadFixtures(path string) (fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixtures{}, fmt.Errorf("read fixtures: %w", err)
	}
	return parseFixtures(data)
}

// parseFixtures accepts several YAML documents in one file and concatenates them.
func parseFixtures(data []byte) (fixtures, error) {
	var out fixtures
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc fixtures
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fixtures{}, fmt.Errorf("parse fixtures: %w", err)
		}
		out.Posts = append(out.Posts, doc.Posts...)
		out.Comments = append(out.Comments, doc.Comments...)
	}
	for i := range out.Comments {
		out.Comments[i].Position = i
		if out.Comments[i].Category == "" {
			out.Comments[i].Category = model.CategoryGeneral
		}
	}
	return out, nil
}
