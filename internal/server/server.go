// Package server exposes the portfolio over HTTP: read-only content
// endpoints backed by the aggregate cache, a contact intake endpoint, and a
// compatibility CRUD API for clients of the pre-document-store backend.
package server

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mohsinali45213/folio/internal/admin"
	"github.com/mohsinali45213/folio/internal/config"
	"github.com/mohsinali45213/folio/internal/content"
	"github.com/mohsinali45213/folio/internal/store"
)

type Server struct {
	app      *fiber.App
	db       *gorm.DB
	services *content.Services
	cache    *store.Content
	blobs    admin.BlobStore
	bucket   string
	cron     *cron.Cron
	port     int
	refresh  string
}

// OpenDB opens the compatibility database and migrates its two tables.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.AutoMigrate(&SkillRecord{}, &ProjectRecord{}); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return db, nil
}

func New(cfg config.ServerConfig, db *gorm.DB, services *content.Services, cache *store.Content, blobs admin.BlobStore, bucket string) *Server {
	s := &Server{
		app:      fiber.New(fiber.Config{AppName: "folio"}),
		db:       db,
		services: services,
		cache:    cache,
		blobs:    blobs,
		bucket:   bucket,
		cron:     cron.New(),
		port:     cfg.Port,
		refresh:  cfg.RefreshEvery,
	}
	s.app.Use(recover.New())
	s.app.Use(logger.New())
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")

	// Aggregate cache, read-only.
	api.Get("/content", s.getContent)
	api.Get("/content/info", s.getInfo)
	api.Get("/content/experiences", s.getExperiences)
	api.Get("/content/projects", s.getProjects)
	api.Get("/content/skills", s.getSkills)
	api.Get("/content/certificates", s.getCertificates)

	api.Post("/contact", s.postContact)

	// Compatibility surface for the pre-document-store clients.
	v1 := api.Group("/v1")
	v1.Get("/skills", s.listLegacySkills)
	v1.Post("/skills", s.createLegacySkill)
	v1.Put("/skills/:id", s.updateLegacySkill)
	v1.Delete("/skills/:id", s.deleteLegacySkill)
	v1.Get("/projects", s.listLegacyProjects)
	v1.Post("/projects", s.createLegacyProject)
	v1.Put("/projects/:id", s.updateLegacyProject)
	v1.Delete("/projects/:id", s.deleteLegacyProject)
}

// Listen refreshes the cache, schedules periodic refreshes, and serves until
// the listener fails.
func (s *Server) Listen(ctx context.Context) error {
	if err := s.cache.LoadAll(ctx); err != nil {
		log.Printf("warning: initial content load: %v", err)
	}
	if _, err := s.cron.AddFunc(s.refresh, func() {
		if err := s.cache.LoadAll(context.Background()); err != nil {
			log.Printf("warning: scheduled content refresh: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("scheduling content refresh: %w", err)
	}
	s.cron.Start()
	defer s.cron.Stop()

	log.Printf("serving on http://localhost:%d", s.port)
	return s.app.Listen(fmt.Sprintf(":%d", s.port))
}

func (s *Server) Shutdown() error {
	s.cron.Stop()
	return s.app.Shutdown()
}
