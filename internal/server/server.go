package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"seogap-go/internal/config"
	"seogap-go/pkg/analysis"
	"seogap-go/pkg/logger"
	"seogap-go/pkg/storage"
)

// Server exposes the generated report, exports, and a status API.
type Server struct {
	app        *fiber.App
	cfg        *config.Config
	store      storage.Storage
	projectDir string
	log        *logger.Logger
}

func New(cfg *config.Config, store storage.Storage, projectDir string) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())

	s := &Server{
		app:        app,
		cfg:        cfg,
		store:      store,
		projectDir: projectDir,
		log:        logger.GetLogger().WithField("component", "server"),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/healthz", s.handleHealth)
	s.app.Get("/api/status", s.handleStatus)

	s.app.Static("/reports", s.projectDir, fiber.Static{Browse: true})
	s.app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/reports/seo_report.html", fiber.StatusFound)
	})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleStatus reports which analysis artifacts exist, mirroring the
// workflow's data inventory.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	keys, err := s.store.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list data files: %w", err)
	}

	steps := []struct {
		Key  string
		Name string
	}{
		{analysis.KeySignals, "Site signal collection"},
		{analysis.KeyPhase1, "API data collection"},
		{analysis.KeyFinal, "Gap analysis"},
		{analysis.KeyGeo, "Structured data audit"},
		{analysis.KeyPerformance, "Performance audit"},
	}

	present := make(map[string]bool, len(keys))
	for _, key := range keys {
		present[key] = true
	}

	inventory := make([]fiber.Map, 0, len(steps))
	for _, step := range steps {
		inventory = append(inventory, fiber.Map{
			"key":       step.Key,
			"step":      step.Name,
			"completed": present[step.Key],
		})
	}

	return c.JSON(fiber.Map{
		"target": s.cfg.Target.Domain,
		"files":  keys,
		"steps":  inventory,
	})
}

// Start blocks serving HTTP on the configured address.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.log.WithField("addr", addr).Info("Report server listening")
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
