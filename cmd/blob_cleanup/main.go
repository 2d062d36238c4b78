package main

import (
	"context"
	"os"
	"strings"

	"coursematerials/internal/blobstore"
	"coursematerials/internal/config"
	"coursematerials/internal/database"
	"coursematerials/internal/domain/image"
	"coursematerials/internal/domain/material"
	"coursematerials/internal/domain/section"
	"coursematerials/internal/pkg/logger"
)

// blob_cleanup releases image blobs that no material references any more,
// e.g. left behind by a crash between storing an upload and saving the row.
// Run it while the API is idle: a blob stored by an in-flight request is not
// referenced yet either.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	dryRun := strings.EqualFold(strings.TrimSpace(os.Getenv("DRY_RUN")), "true")
	ctx := context.Background()

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("db connect failed", "error", err)
	}
	if err := database.Migrate(db, &section.Section{}, &material.Material{}); err != nil {
		log.Fatal("migration failed", "error", err)
	}

	store, err := blobstore.New(ctx, cfg.Blob())
	if err != nil {
		log.Fatal("blob store init failed", "error", err)
	}
	images := image.NewManager(store, log)

	sectionRepo := section.NewRepository(db)
	materials := material.NewService(material.NewRepository(db), sectionRepo, images, log)

	orphans, err := findOrphans(ctx, store, materials)
	if err != nil {
		log.Fatal("orphan scan failed", "error", err)
	}

	for _, name := range orphans {
		if dryRun {
			log.Info("orphan blob", "blob", name)
			continue
		}
		images.Release(ctx, name)
	}

	log.Info("blob cleanup completed", "orphans", len(orphans), "dry_run", dryRun)
}

type referenceLister interface {
	ReferencedImages(ctx context.Context) ([]string, error)
}

func findOrphans(ctx context.Context, store blobstore.Store, materials referenceLister) ([]string, error) {
	referenced, err := materials.ReferencedImages(ctx)
	if err != nil {
		return nil, err
	}
	inUse := make(map[string]struct{}, len(referenced))
	for _, name := range referenced {
		inUse[name] = struct{}{}
	}

	blobs, err := store.List(ctx)
	if err != nil {
		return nil, err
	}

	var orphans []string
	for _, name := range blobs {
		if _, ok := inUse[name]; !ok {
			orphans = append(orphans, name)
		}
	}
	return orphans, nil
}
