package controllers

import (
	"log/slog"
	"net/http"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// CreateVendorRequest is the request body for POST /api/vendors.
type CreateVendorRequest struct {
	EventID  int64  `json:"event_id" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required,max=200"`
	Services string `json:"services" validate:"max=2000"`
}

// UpdateVendorRequest is the request body for PATCH /api/vendors/{id}.
type UpdateVendorRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Services *string `json:"services" validate:"omitempty,max=2000"`
}

type VendorResponse struct {
	Message string               `json:"message"`
	Vendor  *domain.VendorRecord `json:"vendor"`
}

type VendorListResponse struct {
	Message string                 `json:"message"`
	Vendors []*domain.VendorRecord `json:"vendors"`
}

type VendorController struct {
	Logger  *slog.Logger
	Service domain.VendorService
}

func NewVendorController(logger *slog.Logger, svc domain.VendorService) *VendorController {
	return &VendorController{Logger: logger, Service: svc}
}

// RegisterVendor godoc
// @Summary Register a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vendor body CreateVendorRequest true "Vendor data"
// @Success 201 {object} controllers.VendorResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /vendors [post]
func (c *VendorController) RegisterVendor(w http.ResponseWriter, r *http.Request) {
	var req CreateVendorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	v, err := c.Service.Create(r.Context(), req.EventID, helpers.Text(req.Name), helpers.Text(req.Services))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, VendorResponse{Message: "Vendor registered", Vendor: v})
}

// ListVendors godoc
// @Summary List an event's vendors
// @Tags vendors
// @Produce json
// @Param event_id query int true "Event ID"
// @Success 200 {object} controllers.VendorListResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /vendors [get]
func (c *VendorController) ListVendors(w http.ResponseWriter, r *http.Request) {
	eventID, err := helpers.QueryID(r, "event_id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	list, err := c.Service.ListByEvent(r.Context(), eventID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	if list == nil {
		list = []*domain.VendorRecord{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, VendorListResponse{Message: "Vendors retrieved", Vendors: list})
}

// UpdateVendor godoc
// @Summary Update a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vendor ID"
// @Param vendor body UpdateVendorRequest true "Fields to change"
// @Success 200 {object} controllers.VendorResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /vendors/{id} [patch]
func (c *VendorController) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req UpdateVendorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	v, err := c.Service.Update(r.Context(), id, domain.VendorUpdate{
		Name:     helpers.TextPtr(req.Name),
		Services: helpers.TextPtr(req.Services),
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, VendorResponse{Message: "Vendor updated", Vendor: v})
}

// DeleteVendor godoc
// @Summary Delete a vendor
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vendor ID"
// @Success 200 {object} helpers.DeletedResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /vendors/{id} [delete]
func (c *VendorController) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := helpers.PathID(r, "id")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, helpers.DeletedResponse{Message: "Vendor deleted", ID: id})
}
