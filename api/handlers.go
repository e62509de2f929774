package api

import (
	"context"
	"errors"
	"time"

	"github.com/CristiGvl/picoMemBar/internal/memory"
	"github.com/gofiber/fiber/v2"
)

const requestTimeout = 10 * time.Second

// memoryResponse is the snapshot plus the derived used count
type memoryResponse struct {
	*memory.Snapshot
	Used uint64 `json:"used"`
}

// statusResponse is a rendered block
type statusResponse struct {
	FullText string `json:"full_text"`
	State    string `json:"state"`
}

// Memory endpoint
func (s *Server) getMemory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	snap, used, err := s.module.Snapshot(ctx)
	if err != nil {
		return readError(c, err)
	}

	return c.JSON(memoryResponse{Snapshot: snap, Used: used})
}

// Rendered status endpoint
func (s *Server) getMemoryStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	block := s.module.Update(ctx)
	return c.JSON(statusResponse{
		FullText: block.FullText,
		State:    block.State.String(),
	})
}

func readError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if errors.Is(err, memory.ErrUnavailable) {
		code = fiber.StatusNotImplemented
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
