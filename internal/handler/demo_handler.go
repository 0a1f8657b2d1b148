package handler

import (
	"go-hardware-demo/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ReadinessChecker reports whether the persisted state has been loaded.
type ReadinessChecker interface {
	Loaded() bool
}

type DemoHandler struct {
	service service.DemoService
	ready   ReadinessChecker
}

func NewDemoHandler(s service.DemoService, ready ReadinessChecker) *DemoHandler {
	return &DemoHandler{service: s, ready: ready}
}

func (h *DemoHandler) GetShop(c *fiber.Ctx) error {
	return c.JSON(h.service.ShopInfo())
}

// Seed loads the sample dataset unless the shop was seeded before.
// POST /api/v1/demo/seed
func (h *DemoHandler) Seed(c *fiber.Ctx) error {
	seeded, err := h.service.SeedIfNeeded(c.UserContext())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to seed demo data"})
	}
	if !seeded {
		return c.JSON(fiber.Map{"message": "Demo data already present", "seeded": false})
	}
	return c.JSON(fiber.Map{"message": "Demo data loaded", "seeded": true, "data": h.service.ShopInfo()})
}

// Reset wipes every record and reloads the sample dataset.
// POST /api/v1/demo/reset
func (h *DemoHandler) Reset(c *fiber.Ctx) error {
	if err := h.service.Reset(c.UserContext()); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to reset demo data"})
	}
	return c.JSON(fiber.Map{"message": "Demo data reset", "data": h.service.ShopInfo()})
}

func (h *DemoHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *DemoHandler) Ready(c *fiber.Ctx) error {
	if !h.ready.Loaded() {
		return c.Status(503).JSON(fiber.Map{"status": "loading"})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
