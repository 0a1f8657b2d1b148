package handler

import (
	"errors"

	"go-hardware-demo/internal/service"
	"go-hardware-demo/internal/store"
	"go-hardware-demo/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// storeError maps service and store failures onto HTTP status codes.
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrItemNotFound),
		errors.Is(err, store.ErrCustomerNotFound),
		errors.Is(err, store.ErrInvoiceNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidTaxRate),
		errors.Is(err, service.ErrInvalidInvoiceLine),
		errors.Is(err, service.ErrInvalidStockRequest):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

// parseAndValidate decodes the JSON body into req and runs struct validation.
// It writes the 400 response itself and reports whether the handler may go on.
func parseAndValidate(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return false, c.Status(400).JSON(fiber.Map{"error": validator.Message(errs), "details": errs})
	}
	return true, nil
}
