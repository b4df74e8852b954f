package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tekser/repair-tracker/internal/httperr"
	"github.com/tekser/repair-tracker/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// --------- Requests ---------

type CreateCustomerRequest struct {
	CompanyCode string `json:"company_code" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
	TaxNumber   string `json:"tax_number"`
	TaxOffice   string `json:"tax_office"`
}

type UpdateCustomerRequest struct {
	CompanyCode *string `json:"company_code,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	TaxNumber   *string `json:"tax_number,omitempty"`
	TaxOffice   *string `json:"tax_office,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *CustomerHandler) List(c *gin.Context) {
	var customers []models.Customer
	if err := h.db.
		Order("company_name ASC").
		Find(&customers).Error; err != nil {

		httperr.Internal(c, "customer_list_failed", "Failed to list customers.")
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	var customer models.Customer
	if err := h.db.First(&customer, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "customer_get_failed", "Failed to get customer.")
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	code := strings.TrimSpace(req.CompanyCode)

	var count int64
	h.db.Model(&models.Customer{}).Where("company_code = ?", code).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "company_code_already_exists", "A customer with this company code already exists.")
		return
	}

	customer := models.Customer{
		CompanyCode: code,
		CompanyName: req.CompanyName,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		TaxNumber:   req.TaxNumber,
		TaxOffice:   req.TaxOffice,
		IsActive:    true,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		if isUniqueViolation(err) {
			httperr.Conflict(c, "company_code_already_exists", "A customer with this company code already exists.")
			return
		}
		httperr.Internal(c, "customer_create_failed", "Failed to create customer.")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var customer models.Customer
	if err := h.db.First(&customer, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "customer_not_found", "Customer not found.")
			return
		}
		httperr.Internal(c, "customer_get_failed", "Failed to get customer.")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.CompanyCode != nil {
		code := strings.TrimSpace(*req.CompanyCode)

		var count int64
		h.db.Model(&models.Customer{}).
			Where("company_code = ? AND id <> ?", code, customer.ID).
			Count(&count)
		if count > 0 {
			httperr.Conflict(c, "company_code_already_exists", "A customer with this company code already exists.")
			return
		}
		customer.CompanyCode = code
	}
	if req.CompanyName != nil {
		customer.CompanyName = *req.CompanyName
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.TaxNumber != nil {
		customer.TaxNumber = *req.TaxNumber
	}
	if req.TaxOffice != nil {
		customer.TaxOffice = *req.TaxOffice
	}
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "customer_update_failed", "Failed to update customer.")
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	res := h.db.Delete(&models.Customer{}, c.Param("id"))
	if res.Error != nil {
		httperr.Internal(c, "customer_delete_failed", "Failed to delete customer.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "customer_not_found", "Customer not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
