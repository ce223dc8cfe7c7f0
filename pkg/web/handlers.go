package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/teslashibe/go-catwatch/pkg/hub"
)

// handleStatus returns the current pipeline status.
func (s *Server) handleStatus(c *fiber.Ctx) error {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return c.JSON(s.state)
}

// handleStatusWS streams status updates to a preview client.
func (s *Server) handleStatusWS(c *websocket.Conn) {
	// Send the current status immediately on connect
	s.stateMu.RLock()
	c.WriteJSON(s.state)
	s.stateMu.RUnlock()

	hub.NewClient(s.statusHub, c).Run()
}

// handleCameraWS streams annotated JPEG frames to a preview client.
func (s *Server) handleCameraWS(c *websocket.Conn) {
	hub.NewClient(s.cameraHub, c).Run()
}
