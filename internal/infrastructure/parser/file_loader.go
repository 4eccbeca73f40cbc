package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"MediaMap/internal/domain"
	"MediaMap/internal/loader"
)

// JSONLoader reads a dataset stored as a JSON array of articles.
type JSONLoader struct{}

var _ loader.Loader = JSONLoader{}

// NewJSONLoader builds the json format loader.
func NewJSONLoader() JSONLoader { return JSONLoader{} }

// Name identifies the loader inside the registry.
func (JSONLoader) Name() string { return "json" }

// Load decodes each array element on its own so one bad article does not hide the rest.
func (JSONLoader) Load(ctx context.Context, req loader.Request) ([]domain.Record, error) {
	raw, err := readDataset(ctx, req)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("dataset %s: parse json array: %w", req.Name, err)
	}

	records := make([]domain.Record, 0, len(items))
	for i, item := range items {
		var rec articleRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			bad := malformed(i, err)
			var head struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			}
			if json.Unmarshal(item, &head) == nil {
				bad.Article.ID, bad.Article.Title = head.ID, head.Title
			}
			records = append(records, bad)
			continue
		}
		records = append(records, rec.toRecord(i))
	}

	return records, nil
}

// YAMLLoader reads a dataset stored as a YAML sequence of articles.
type YAMLLoader struct{}

var _ loader.Loader = YAMLLoader{}

// NewYAMLLoader builds the yaml format loader.
func NewYAMLLoader() YAMLLoader { return YAMLLoader{} }

// Name identifies the loader inside the registry.
func (YAMLLoader) Name() string { return "yaml" }

// Load decodes each sequence item on its own.
func (YAMLLoader) Load(ctx context.Context, req loader.Request) ([]domain.Record, error) {
	raw, err := readDataset(ctx, req)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("dataset %s: parse yaml: %w", req.Name, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return []domain.Record{}, nil
	}

	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("dataset %s: expected a sequence of articles at line %d", req.Name, seq.Line)
	}

	records := make([]domain.Record, 0, len(seq.Content))
	for i, item := range seq.Content {
		var rec articleRecord
		if err := item.Decode(&rec); err != nil {
			bad := malformed(i, fmt.Errorf("line %d: %w", item.Line, err))
			var head struct {
				ID    string `yaml:"id"`
				Title string `yaml:"title"`
			}
			if item.Decode(&head) == nil {
				bad.Article.ID, bad.Article.Title = head.ID, head.Title
			}
			records = append(records, bad)
			continue
		}
		records = append(records, rec.toRecord(i))
	}

	return records, nil
}

func readDataset(ctx context.Context, req loader.Request) ([]byte, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("dataset %s: path is empty", req.Name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: read %s: %w", req.Name, req.Path, err)
	}
	return raw, nil
}
