package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/medequip-service/internal/api/dto"
	"github.com/spec-kit/medequip-service/internal/service"
)

// MaintenanceHandler records and lists maintenance work.
type MaintenanceHandler struct {
	service *service.MaintenanceService
}

// NewMaintenanceHandler constructs handler.
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: maintenanceService}
}

// Create POST /maintenance.
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var req dto.CreateMaintenanceRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	record, err := h.service.Create(c.UserContext(), identity, service.MaintenanceCreateInput{
		EquipmentID:         req.EquipmentID,
		MaintenanceType:     req.MaintenanceType,
		Description:         req.Description,
		NextMaintenanceDate: req.NextMaintenanceDate,
		Cost:                req.Cost,
		Notes:               req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewMaintenanceResponse(record))
}

// ListByEquipment GET /maintenance/equipment/:id.
func (h *MaintenanceHandler) ListByEquipment(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}
	records, err := h.service.ListByEquipment(c.UserContext(), identity, c.Params("id"))
	if err != nil {
		return err
	}
	resp := make([]dto.MaintenanceResponse, 0, len(records))
	for i := range records {
		resp = append(resp, dto.NewMaintenanceResponse(&records[i]))
	}
	return c.JSON(resp)
}
