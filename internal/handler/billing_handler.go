package handler

import (
	"fmt"
	"time"

	"go-hardware-demo/internal/export"
	"go-hardware-demo/internal/model"
	"go-hardware-demo/internal/service"

	"github.com/gofiber/fiber/v2"
)

type BillingHandler struct {
	service service.BillingService
	demo    service.DemoService
	loc     *time.Location
}

func NewBillingHandler(s service.BillingService, demo service.DemoService, loc *time.Location) *BillingHandler {
	return &BillingHandler{service: s, demo: demo, loc: loc}
}

func (h *BillingHandler) GetCustomers(c *fiber.Ctx) error {
	return c.JSON(h.service.ListCustomers())
}

func (h *BillingHandler) CreateCustomer(c *fiber.Ctx) error {
	var req CreateCustomerRequest
	if ok, err := parseAndValidate(c, &req); !ok {
		return err
	}

	customer, err := h.service.AddCustomer(c.UserContext(), model.NewCustomer{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		GSTIN:   req.GSTIN,
	})
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Customer created", "data": customer})
}

func (h *BillingHandler) GetInvoices(c *fiber.Ctx) error {
	return c.JSON(h.service.ListInvoices())
}

func (h *BillingHandler) GetInvoice(c *fiber.Ctx) error {
	inv, err := h.service.GetInvoice(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(inv)
}

func (h *BillingHandler) CreateInvoice(c *fiber.Ctx) error {
	var req CreateInvoiceRequest
	if ok, err := parseAndValidate(c, &req); !ok {
		return err
	}

	inv, err := h.service.CreateInvoice(c.UserContext(), req.toModel())
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Invoice created", "data": inv})
}

// QuoteInvoice previews draft totals without saving anything.
func (h *BillingHandler) QuoteInvoice(c *fiber.Ctx) error {
	var req QuoteInvoiceRequest
	if ok, err := parseAndValidate(c, &req); !ok {
		return err
	}

	totals, err := h.service.QuoteInvoice(toLineInputs(req.Lines), req.TaxRate)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(totals)
}

func (h *BillingHandler) TogglePaid(c *fiber.Ctx) error {
	inv, err := h.service.TogglePaid(c.UserContext(), c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Invoice updated", "data": inv})
}

func (h *BillingHandler) GetOptions(c *fiber.Ctx) error {
	return c.JSON(h.service.Options())
}

func (h *BillingHandler) ExportInvoice(c *fiber.Ctx) error {
	inv, err := h.service.GetInvoice(c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}

	f, name, err := export.InvoiceWorkbook(h.demo.ShopInfo().ShopName, inv, h.loc)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build workbook"})
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write workbook"})
	}
	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Send(buf.Bytes())
}
