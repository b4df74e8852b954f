package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tekser/repair-tracker/internal/httperr"
	"github.com/tekser/repair-tracker/internal/httpresp"
	"github.com/tekser/repair-tracker/internal/middleware"
	ucRecord "github.com/tekser/repair-tracker/internal/usecase/servicerecord"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceRecordHandler struct {
	createUC *ucRecord.CreateServiceRecord
	updateUC *ucRecord.UpdateServiceRecord
	deleteUC *ucRecord.DeleteServiceRecord
	getUC    *ucRecord.GetServiceRecord
	listUC   *ucRecord.ListServiceRecords
	logsUC   *ucRecord.ListRecordLogs
	statsUC  *ucRecord.GetDashboardStats
}

func NewServiceRecordHandler(
	createUC *ucRecord.CreateServiceRecord,
	updateUC *ucRecord.UpdateServiceRecord,
	deleteUC *ucRecord.DeleteServiceRecord,
	getUC *ucRecord.GetServiceRecord,
	listUC *ucRecord.ListServiceRecords,
	logsUC *ucRecord.ListRecordLogs,
	statsUC *ucRecord.GetDashboardStats,
) *ServiceRecordHandler {
	return &ServiceRecordHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		getUC:    getUC,
		listUC:   listUC,
		logsUC:   logsUC,
		statsUC:  statsUC,
	}
}

// --------- Requests ---------

type CreateServiceRecordRequest struct {
	CustomerID *uint `json:"customer_id"`
	BrandID    *uint `json:"brand_id"`
	ServiceID  *uint `json:"service_id"`

	Model        string `json:"model" binding:"required"`
	SerialNumber string `json:"serial_number"`
	Accessories  string `json:"accessories"`
	Issue        string `json:"issue"`

	ArrivalDate       string `json:"arrival_date" binding:"required"`
	ServiceSendDate   string `json:"service_send_date"`
	ServiceOperation  string `json:"service_operation"`
	ServiceReturnDate string `json:"service_return_date"`
	DeliveryDate      string `json:"delivery_date"`
}

type UpdateServiceRecordRequest struct {
	CustomerID *uint `json:"customer_id,omitempty"`
	BrandID    *uint `json:"brand_id,omitempty"`
	ServiceID  *uint `json:"service_id,omitempty"`

	Model        *string `json:"model,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
	Accessories  *string `json:"accessories,omitempty"`
	Issue        *string `json:"issue,omitempty"`

	ArrivalDate       *string `json:"arrival_date,omitempty"`
	ServiceSendDate   *string `json:"service_send_date,omitempty"`
	ServiceOperation  *string `json:"service_operation,omitempty"`
	ServiceReturnDate *string `json:"service_return_date,omitempty"`
	DeliveryDate      *string `json:"delivery_date,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceRecordHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if limit > 200 {
		limit = 200
	}

	records, total, err := h.listUC.Execute(c.Request.Context(), page, limit)
	if err != nil {
		httperr.Internal(c, "record_list_failed", "Failed to list service records.")
		return
	}

	httpresp.List(c, records, total)
}

func (h *ServiceRecordHandler) Get(c *gin.Context) {
	id, err := recordID(c)
	if err != nil {
		return
	}

	rec, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeRecordError(c, err)
		return
	}

	httpresp.OK(c, rec)
}

func (h *ServiceRecordHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rec, err := h.createUC.Execute(c.Request.Context(), userID, ucRecord.CreateServiceRecordInput{
		CustomerID: req.CustomerID,
		BrandID:    req.BrandID,
		ServiceID:  req.ServiceID,

		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		Accessories:  req.Accessories,
		Issue:        req.Issue,

		ArrivalDate:       req.ArrivalDate,
		ServiceSendDate:   req.ServiceSendDate,
		ServiceOperation:  req.ServiceOperation,
		ServiceReturnDate: req.ServiceReturnDate,
		DeliveryDate:      req.DeliveryDate,
	})
	if err != nil {
		writeRecordError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (h *ServiceRecordHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := recordID(c)
	if err != nil {
		return
	}

	var req UpdateServiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	_, err = h.updateUC.Execute(c.Request.Context(), userID, id, ucRecord.UpdateServiceRecordInput{
		CustomerID: req.CustomerID,
		BrandID:    req.BrandID,
		ServiceID:  req.ServiceID,

		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		Accessories:  req.Accessories,
		Issue:        req.Issue,

		ArrivalDate:       req.ArrivalDate,
		ServiceSendDate:   req.ServiceSendDate,
		ServiceOperation:  req.ServiceOperation,
		ServiceReturnDate: req.ServiceReturnDate,
		DeliveryDate:      req.DeliveryDate,
	})
	if err != nil {
		writeRecordError(c, err)
		return
	}

	// Re-read so the response carries fresh nested objects.
	rec, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeRecordError(c, err)
		return
	}

	httpresp.OK(c, rec)
}

func (h *ServiceRecordHandler) Delete(c *gin.Context) {
	id, err := recordID(c)
	if err != nil {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		writeRecordError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ServiceRecordHandler) Logs(c *gin.Context) {
	id, err := recordID(c)
	if err != nil {
		return
	}

	logs, err := h.logsUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeRecordError(c, err)
		return
	}

	httpresp.OK(c, logs)
}

func (h *ServiceRecordHandler) DashboardStats(c *gin.Context) {
	stats, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "dashboard_stats_failed", "Failed to compute dashboard statistics.")
		return
	}

	httpresp.OK(c, stats)
}

// --------- Helpers ---------

func recordID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Record id must be a number.")
		return 0, err
	}
	return uint(id), nil
}

func writeRecordError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "record_not_found", "Service record not found.")
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		httperr.BadRequest(c, be.Code, "Invalid service record payload.")
		return
	}

	httperr.Internal(c, "record_write_failed", "Service record operation failed.")
}
