package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tekser/repair-tracker/internal/httperr"
	"github.com/tekser/repair-tracker/internal/models"
)

type BrandHandler struct {
	db *gorm.DB
}

func NewBrandHandler(db *gorm.DB) *BrandHandler {
	return &BrandHandler{db: db}
}

// --------- Requests ---------

type CreateBrandRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateBrandRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *BrandHandler) List(c *gin.Context) {
	var brands []models.Brand
	if err := h.db.
		Order("name ASC").
		Find(&brands).Error; err != nil {

		httperr.Internal(c, "brand_list_failed", "Failed to list brands.")
		return
	}

	c.JSON(http.StatusOK, brands)
}

func (h *BrandHandler) Get(c *gin.Context) {
	var brand models.Brand
	if err := h.db.First(&brand, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "brand_not_found", "Brand not found.")
			return
		}
		httperr.Internal(c, "brand_get_failed", "Failed to get brand.")
		return
	}

	c.JSON(http.StatusOK, brand)
}

func (h *BrandHandler) Create(c *gin.Context) {
	var req CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	name := strings.TrimSpace(req.Name)

	var count int64
	h.db.Model(&models.Brand{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "brand_already_exists", "A brand with this name already exists.")
		return
	}

	brand := models.Brand{
		Name:        name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := h.db.Create(&brand).Error; err != nil {
		if isUniqueViolation(err) {
			httperr.Conflict(c, "brand_already_exists", "A brand with this name already exists.")
			return
		}
		httperr.Internal(c, "brand_create_failed", "Failed to create brand.")
		return
	}

	c.JSON(http.StatusCreated, brand)
}

func (h *BrandHandler) Update(c *gin.Context) {
	var brand models.Brand
	if err := h.db.First(&brand, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "brand_not_found", "Brand not found.")
			return
		}
		httperr.Internal(c, "brand_get_failed", "Failed to get brand.")
		return
	}

	var req UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)

		var count int64
		h.db.Model(&models.Brand{}).
			Where("name = ? AND id <> ?", name, brand.ID).
			Count(&count)
		if count > 0 {
			httperr.Conflict(c, "brand_already_exists", "A brand with this name already exists.")
			return
		}
		brand.Name = name
	}
	if req.Description != nil {
		brand.Description = *req.Description
	}
	if req.IsActive != nil {
		brand.IsActive = *req.IsActive
	}

	if err := h.db.Save(&brand).Error; err != nil {
		httperr.Internal(c, "brand_update_failed", "Failed to update brand.")
		return
	}

	c.JSON(http.StatusOK, brand)
}

func (h *BrandHandler) Delete(c *gin.Context) {
	res := h.db.Delete(&models.Brand{}, c.Param("id"))
	if res.Error != nil {
		httperr.Internal(c, "brand_delete_failed", "Failed to delete brand.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "brand_not_found", "Brand not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
