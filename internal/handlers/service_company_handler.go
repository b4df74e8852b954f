package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tekser/repair-tracker/internal/httperr"
	"github.com/tekser/repair-tracker/internal/models"
)

type ServiceCompanyHandler struct {
	db *gorm.DB
}

func NewServiceCompanyHandler(db *gorm.DB) *ServiceCompanyHandler {
	return &ServiceCompanyHandler{db: db}
}

// --------- Requests ---------

type CreateServiceCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
}

type UpdateServiceCompanyRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceCompanyHandler) List(c *gin.Context) {
	var companies []models.Service
	if err := h.db.
		Order("name ASC").
		Find(&companies).Error; err != nil {

		httperr.Internal(c, "service_company_list_failed", "Failed to list service companies.")
		return
	}

	c.JSON(http.StatusOK, companies)
}

func (h *ServiceCompanyHandler) Get(c *gin.Context) {
	var company models.Service
	if err := h.db.First(&company, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_company_not_found", "Service company not found.")
			return
		}
		httperr.Internal(c, "service_company_get_failed", "Failed to get service company.")
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *ServiceCompanyHandler) Create(c *gin.Context) {
	var req CreateServiceCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	name := strings.TrimSpace(req.Name)

	var count int64
	h.db.Model(&models.Service{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "service_company_already_exists", "A service company with this name already exists.")
		return
	}

	company := models.Service{
		Name:        name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		IsActive:    true,
	}

	if err := h.db.Create(&company).Error; err != nil {
		if isUniqueViolation(err) {
			httperr.Conflict(c, "service_company_already_exists", "A service company with this name already exists.")
			return
		}
		httperr.Internal(c, "service_company_create_failed", "Failed to create service company.")
		return
	}

	c.JSON(http.StatusCreated, company)
}

func (h *ServiceCompanyHandler) Update(c *gin.Context) {
	var company models.Service
	if err := h.db.First(&company, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_company_not_found", "Service company not found.")
			return
		}
		httperr.Internal(c, "service_company_get_failed", "Failed to get service company.")
		return
	}

	var req UpdateServiceCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)

		var count int64
		h.db.Model(&models.Service{}).
			Where("name = ? AND id <> ?", name, company.ID).
			Count(&count)
		if count > 0 {
			httperr.Conflict(c, "service_company_already_exists", "A service company with this name already exists.")
			return
		}
		company.Name = name
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.Address != nil {
		company.Address = *req.Address
	}
	if req.Phone != nil {
		company.Phone = *req.Phone
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	if req.IsActive != nil {
		company.IsActive = *req.IsActive
	}

	if err := h.db.Save(&company).Error; err != nil {
		httperr.Internal(c, "service_company_update_failed", "Failed to update service company.")
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *ServiceCompanyHandler) Delete(c *gin.Context) {
	res := h.db.Delete(&models.Service{}, c.Param("id"))
	if res.Error != nil {
		httperr.Internal(c, "service_company_delete_failed", "Failed to delete service company.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_company_not_found", "Service company not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
