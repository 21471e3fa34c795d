package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/medequip-service/internal/api/dto"
	"github.com/spec-kit/medequip-service/internal/service"
)

// EquipmentHandler manages the equipment inventory endpoints.
type EquipmentHandler struct {
	service *service.EquipmentService
}

// NewEquipmentHandler constructs handler.
func NewEquipmentHandler(equipmentService *service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{service: equipmentService}
}

// Create POST /equipment.
func (h *EquipmentHandler) Create(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var req dto.EquipmentCreateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	equipment, err := h.service.Create(c.UserContext(), identity, service.EquipmentCreateInput{
		Name:             req.Name,
		Model:            req.Model,
		Manufacturer:     req.Manufacturer,
		SerialNumber:     req.SerialNumber,
		Description:      req.Description,
		Location:         req.Location,
		Status:           req.Status,
		InstallationDate: req.InstallationDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEquipmentResponse(equipment))
}

// List GET /equipment.
func (h *EquipmentHandler) List(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	items, err := h.service.List(c.UserContext(), identity)
	if err != nil {
		return err
	}
	resp := make([]dto.EquipmentResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.NewEquipmentResponse(&items[i]))
	}
	return c.JSON(resp)
}

// Get GET /equipment/:id.
func (h *EquipmentHandler) Get(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	equipment, err := h.service.Get(c.UserContext(), identity, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEquipmentResponse(equipment))
}

// Update PUT /equipment/:id.
func (h *EquipmentHandler) Update(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var req dto.EquipmentUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}
	equipment, err := h.service.Update(c.UserContext(), identity, c.Params("id"), req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEquipmentResponse(equipment))
}

// Delete DELETE /equipment/:id.
func (h *EquipmentHandler) Delete(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), identity, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Equipment deleted successfully"})
}
