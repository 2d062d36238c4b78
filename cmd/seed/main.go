package main

import (
	"context"
	"os"

	"coursematerials/internal/blobstore"
	"coursematerials/internal/config"
	"coursematerials/internal/database"
	"coursematerials/internal/domain/image"
	"coursematerials/internal/domain/material"
	"coursematerials/internal/domain/section"
	"coursematerials/internal/pkg/logger"
)

type seedMaterial struct {
	title, description, fileType, fileURL string
}

type seedSection struct {
	name      string
	materials []seedMaterial
}

var demo = []seedSection{
	{
		name: "Linear Algebra",
		materials: []seedMaterial{
			{"Course syllabus", "Topics, grading and reading list.", "gdrive_pdf", "https://drive.google.com/file/d/1LinAlgSyllabus01/view?usp=sharing"},
			{"Eigenvalues explained", "", "youtube", "https://www.youtube.com/watch?v=PFDu9oVAE-g"},
		},
	},
	{
		name: "Organic Chemistry",
		materials: []seedMaterial{
			{"Lab safety handbook", "Read before the first lab session.", "gdrive_word", "https://docs.google.com/document/d/1OrgChemLabSafety/edit"},
			{"Reaction mechanisms in 60 seconds", "", "youtube", "https://youtube.com/shorts/dQw4w9WgXcQ"},
		},
	},
	{
		name: "World History",
	},
}

// Seeds demo sections and materials through the services, so every record
// goes through the same validation as the admin API. Existing sections are
// deleted first, releasing their images.
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

	ctx := context.Background()

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("db connect failed", "error", err)
	}
	log.Info("running migrations")
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
	sections := section.NewService(sectionRepo, materials, log)

	log.Info("cleaning old data")
	existing, err := sections.List(ctx)
	if err != nil {
		log.Fatal("list sections failed", "error", err)
	}
	for _, s := range existing {
		if err := sections.Delete(ctx, s.ID); err != nil {
			log.Fatal("delete section failed", "section_id", s.ID, "error", err)
		}
	}

	var created int
	for _, ss := range demo {
		sec, err := sections.Create(ctx, section.SaveSectionRequest{Name: ss.name})
		if err != nil {
			log.Fatal("create section failed", "name", ss.name, "error", err)
		}
		for _, sm := range ss.materials {
			_, err := materials.Create(ctx, material.Payload{
				SectionID:   sec.ID,
				Title:       sm.title,
				Description: sm.description,
				FileType:    sm.fileType,
				FileURL:     sm.fileURL,
			})
			if err != nil {
				log.Fatal("create material failed", "title", sm.title, "error", err)
			}
			created++
		}
	}

	log.Info("seed completed", "sections", len(demo), "materials", created)
}
