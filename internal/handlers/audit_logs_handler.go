package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/validation"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List supports ?action=, ?entity=, ?user_id=, ?from= and ?to= (YYYY-MM-DD, inclusive).
func (h *AuditLogsHandler) List(c *gin.Context) {
	p := paginate(c)

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if userID := queryUint(c, "user_id"); userID != 0 {
		q = q.Where("user_id = ?", userID)
	}

	errs := validation.Errors{}
	if raw := c.Query("from"); raw != "" {
		if from, err := time.Parse(dto.DateLayout, raw); err == nil {
			q = q.Where("created_at >= ?", from)
		} else {
			errs.Add("from", validation.ReasonInvalidFormat)
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := time.Parse(dto.DateLayout, raw); err == nil {
			q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
		} else {
			errs.Add("to", validation.ReasonInvalidFormat)
		}
	}
	if !errs.Empty() {
		fail(c, errs)
		return
	}

	var logs []models.AuditLog
	total, err := findPage(q.Order("created_at DESC, id DESC"), p, &logs)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, dto.Map(logs, dto.NewAuditLogView), total, p.page, p.limit)
}

func (h *AuditLogsHandler) Retrieve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var l models.AuditLog
	if err := h.db.WithContext(c.Request.Context()).First(&l, id).Error; err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, dto.NewAuditLogView(l))
}
