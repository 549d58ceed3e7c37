// Command seed imports a directory of markdown files into a project,
// creating the project when it does not exist yet. Documents whose content
// hash is unchanged since the last import are skipped.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"docuchat/internal/importer"
	"docuchat/internal/storage"
)

var cli struct {
	Dir     string `arg:"" type:"existingdir" help:"Directory of markdown files to import."`
	Project string `required:"" help:"Project slug (the tenant's subdomain)."`
	Name    string `help:"Project display name, used when creating the project." default:""`
	DB      string `help:"SQLite database path." default:"./data/docuchat.db"`
	Verbose bool   `short:"v" help:"Enable debug logging."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("seed"),
		kong.Description("Import markdown documents into a project."),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	kctx.FatalIfErrorf(run())
}

func run() error {
	ctx := context.Background()

	db, err := storage.New(cli.DB)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		return err
	}

	name := cli.Name
	if name == "" {
		name = cli.Project
	}

	projectRepo := storage.NewProjectRepo(db)
	project, err := projectRepo.GetOrCreate(ctx, cli.Project, name)
	if err != nil {
		return err
	}
	slog.Info("Project ready", "slug", project.Slug, "name", project.Name)

	documents, err := importer.LoadDir(ctx, cli.Dir)
	if err != nil {
		return err
	}

	documentRepo := storage.NewDocumentRepo(db)
	existing, err := documentRepo.ListByProject(ctx, project.ID)
	if err != nil {
		return err
	}
	hashes := make(map[string]string, len(existing))
	for _, doc := range existing {
		hashes[doc.Slug] = doc.Hash
	}

	var imported, skipped int
	for _, doc := range documents {
		if hashes[doc.Slug] == doc.Hash {
			slog.Debug("Skipping unchanged document", "slug", doc.Slug)
			skipped++
			continue
		}

		err := documentRepo.Upsert(ctx, &storage.DocumentRecord{
			ProjectID:   project.ID,
			Slug:        doc.Slug,
			Title:       doc.Title,
			Content:     doc.Content,
			Description: doc.Description,
			SortOrder:   doc.SortOrder,
			Hash:        doc.Hash,
		})
		if err != nil {
			return err
		}
		slog.Info("Imported document", "slug", doc.Slug, "title", doc.Title)
		imported++
	}

	slog.Info("Import finished", "imported", imported, "skipped", skipped)
	return nil
}
