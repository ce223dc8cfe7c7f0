// Package web provides a browser preview for the live stream mode:
// annotated frames and pipeline status broadcast over websocket. Useful
// when OpenCV was built without GUI support and no output file is set.
package web

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/teslashibe/go-catwatch/internal/log"
	"github.com/teslashibe/go-catwatch/pkg/hub"
)

// StreamState is the pipeline status shown in the preview.
type StreamState struct {
	Frames   int     `json:"frames"`
	Cats     int     `json:"cats"`
	FPS      float64 `json:"fps"`
	Present  bool    `json:"present"`
	Tracking bool    `json:"tracking"`
}

// Server is the preview server.
type Server struct {
	app  *fiber.App
	addr string

	state   StreamState
	stateMu sync.RWMutex

	// Hubs for websocket broadcast (thread-safe!)
	statusHub *hub.Hub
	cameraHub *hub.Hub
}

// NewServer creates a preview server listening on addr.
func NewServer(addr string) *Server {
	s := &Server{
		addr:      addr,
		statusHub: hub.New("status"),
		cameraHub: hub.New("camera"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Catwatch Preview",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	app.Get("/api/status", s.handleStatus)

	// WebSocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/status", websocket.New(s.handleStatusWS))
	app.Get("/ws/camera", websocket.New(s.handleCameraWS))

	s.app = app
	return s
}

// Start starts the preview server and blocks.
func (s *Server) Start() error {
	go s.statusHub.Run()
	go s.cameraHub.Run()
	return s.app.Listen(s.addr)
}

// StartAsync starts the preview server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			log.Error("preview server stopped", "error", err)
		}
	}()
	log.Info("preview server started", "addr", s.addr)
}

// UpdateState updates the pipeline status and broadcasts it to clients.
func (s *Server) UpdateState(update func(*StreamState)) {
	s.stateMu.Lock()
	update(&s.state)
	state := s.state // Copy for broadcast
	s.stateMu.Unlock()

	s.statusHub.BroadcastJSON(state)
}

// Watching reports whether any client is connected to the camera feed,
// so callers can skip frame encoding when nobody is looking.
func (s *Server) Watching() bool {
	return s.cameraHub.ClientCount() > 0
}

// SendFrame broadcasts an annotated JPEG frame to all connected clients.
func (s *Server) SendFrame(jpegData []byte) {
	if s.cameraHub.ClientCount() == 0 {
		return
	}
	s.cameraHub.BroadcastBinary(jpegData)
}

// Shutdown gracefully stops the preview server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
