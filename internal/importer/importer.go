package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

const parseConcurrency = 4

// Document is a markdown file prepared for import into a project.
type Document struct {
	Slug        string // Filename without extension
	Title       string
	Description string
	Content     string
	SortOrder   int    // Numeric filename prefix, 0 when absent
	Hash        string // xxhash hex of Content
}

// LoadDir reads every markdown file directly under dir and prepares it for
// import. Results are ordered by filename so repeated imports are
// deterministic.
func LoadDir(ctx context.Context, dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	docs := make([]Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parseConcurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			doc, err := loadFile(path)
			if err != nil {
				return err
			}
			docs[i] = *doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}

// loadFile reads one markdown file into a Document.
func loadFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	name := filepath.Base(path)
	slug := strings.TrimSuffix(name, filepath.Ext(name))
	title, description := extractMeta(content, name)

	return &Document{
		Slug:        slug,
		Title:       title,
		Description: description,
		Content:     string(content),
		SortOrder:   sortOrderFromName(name),
		Hash:        fmt.Sprintf("%016x", xxhash.Sum64(content)),
	}, nil
}
