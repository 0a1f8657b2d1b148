package handler

import (
	"fmt"

	"go-hardware-demo/internal/export"
	"go-hardware-demo/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// GetItems lists items, optionally filtered by ?q=
func (h *InventoryHandler) GetItems(c *fiber.Ctx) error {
	return c.JSON(h.service.ListItems(c.Query("q")))
}

func (h *InventoryHandler) GetLowStock(c *fiber.Ctx) error {
	return c.JSON(h.service.LowStock())
}

func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.service.GetItem(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(item)
}

func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var req CreateItemRequest
	if ok, err := parseAndValidate(c, &req); !ok {
		return err
	}

	item, err := h.service.CreateItem(c.UserContext(), req.toModel())
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Item created", "data": item})
}

func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var req UpdateItemRequest
	if ok, err := parseAndValidate(c, &req); !ok {
		return err
	}

	item, err := h.service.UpdateItem(c.UserContext(), c.Params("id"), req.toModel())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item updated", "data": item})
}

func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.service.DeleteItem(c.UserContext(), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item deleted"})
}

// GetMovements returns the movement log, newest first. Query params: limit (default all)
func (h *InventoryHandler) GetMovements(c *fiber.Ctx) error {
	return c.JSON(h.service.ListMovements(c.QueryInt("limit", 0)))
}

func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var req RecordMovementRequest
	if ok, err := parseAndValidate(c, &req); !ok {
		return err
	}

	mov, err := h.service.RecordMovement(c.UserContext(), req.toModel())
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Movement recorded", "data": mov})
}

// RecordStock accepts the stock form and derives the signed quantity change.
func (h *InventoryHandler) RecordStock(c *fiber.Ctx) error {
	var req StockFormRequest
	if ok, err := parseAndValidate(c, &req); !ok {
		return err
	}

	mov, err := h.service.RecordStock(c.UserContext(), req.toService())
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Stock updated", "data": mov})
}

func (h *InventoryHandler) ExportItems(c *fiber.Ctx) error {
	f, err := export.InventoryWorkbook(h.service.ListItems(c.Query("q")))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build workbook"})
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write workbook"})
	}
	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "inventory.xlsx"))
	return c.Send(buf.Bytes())
}
