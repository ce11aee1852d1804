// Package server exposes the packer over HTTP. Requests carry a container
// and either explicit items or load lines; responses report every
// placement in the order the items were packed, along with the wasted area.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/piwi3910/LoadPack/internal/engine"
	"github.com/piwi3910/LoadPack/internal/export"
	"github.com/piwi3910/LoadPack/internal/model"
)

// Server serves the packing API.
type Server struct {
	inventory model.Inventory
	settings  model.PackSettings
	logger    *log.Logger
	router    *gin.Engine
}

// New builds a server backed by the given container presets. settings are
// used when a request does not say whether rotation is allowed.
func New(inv model.Inventory, settings model.PackSettings, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{inventory: inv, settings: settings, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.handleHealth)
	api := r.Group("/api")
	api.GET("/containers", s.handleContainers)
	api.POST("/order", s.handleOrder)
	api.POST("/pack", s.handlePack)
	api.POST("/pack.png", s.handlePackPNG)
	api.POST("/compare", s.handleCompare)

	s.router = r
	return s
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleContainers(c *gin.Context) {
	c.JSON(http.StatusOK, s.inventory.Containers)
}

func (s *Server) handleOrder(c *gin.Context) {
	var req packRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	items, err := req.toItems()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": engine.Order(items)})
}

func (s *Server) handlePack(c *gin.Context) {
	result, ok := s.pack(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newPackResponse(result))
}

func (s *Server) handlePackPNG(c *gin.Context) {
	scale := export.DefaultPNGScale
	if v := c.Query("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			badRequest(c, errors.New("scale must be a positive number"))
			return
		}
		scale = f
	}

	result, ok := s.pack(c)
	if !ok {
		return
	}
	c.Header("X-Wasted-Area", strconv.FormatFloat(result.WastedArea(), 'g', -1, 64))
	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := export.WritePNG(c.Writer, result, scale); err != nil {
		s.logger.Error("png render failed", "err", err)
	}
}

func (s *Server) handleCompare(c *gin.Context) {
	var req packRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	container, err := s.resolveContainer(req)
	if err != nil {
		s.fail(c, err)
		return
	}
	items, err := req.toItems()
	if err != nil {
		s.fail(c, err)
		return
	}

	scenarios := engine.BuildDefaultScenarios(container, req.settings(s.settings))
	results, err := engine.CompareScenarios(scenarios, items, engine.WithLogger(s.logger))
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := make([]scenarioResponse, len(results))
	for i, r := range results {
		resp[i] = scenarioResponse{
			Name:          r.Scenario.Name,
			Container:     r.Scenario.Container,
			AllowRotation: r.Scenario.Settings.AllowRotation,
			PlacedCount:   r.PlacedCount,
			UnplacedCount: r.UnplacedCount,
			WastedArea:    r.WastedArea,
			Efficiency:    r.Efficiency,
		}
	}
	best, _ := engine.Best(results)
	c.JSON(http.StatusOK, gin.H{"scenarios": resp, "best": best.Scenario.Name})
}

// pack binds the request and runs the packer. On failure it has already
// written the error response.
func (s *Server) pack(c *gin.Context) (model.PackResult, bool) {
	var req packRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return model.PackResult{}, false
	}
	container, err := s.resolveContainer(req)
	if err != nil {
		s.fail(c, err)
		return model.PackResult{}, false
	}
	items, err := req.toItems()
	if err != nil {
		s.fail(c, err)
		return model.PackResult{}, false
	}

	result, err := engine.Run(req.settings(s.settings), items, container, engine.WithLogger(s.logger))
	if err != nil {
		s.fail(c, err)
		return model.PackResult{}, false
	}
	return result, true
}

func (s *Server) resolveContainer(req packRequest) (model.Container, error) {
	if req.Preset != "" {
		p := s.inventory.FindContainerByName(req.Preset)
		if p == nil {
			p = s.inventory.FindContainerByID(req.Preset)
		}
		if p == nil {
			return model.Container{}, errUnknownPreset{name: req.Preset}
		}
		return p.ToContainer(), nil
	}
	if req.Container == nil {
		return model.Container{}, errMissingContainer
	}
	c := *req.Container
	if c.Label == "" {
		c.Label = model.NewContainer(c.Width, c.Height).Label
	}
	return c, nil
}

func (s *Server) fail(c *gin.Context, err error) {
	var unknown errUnknownPreset
	switch {
	case errors.As(err, &unknown):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, errMissingContainer):
		badRequest(c, err)
	default:
		s.logger.Error("request failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

var errMissingContainer = errors.New("container or preset is required")

type errUnknownPreset struct{ name string }

func (e errUnknownPreset) Error() string {
	return "unknown container preset " + strconv.Quote(e.name)
}
