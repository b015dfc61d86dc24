package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/salon-backoffice/internal/middleware"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/policy"
)

type EmployeeHandler struct {
	db        *gorm.DB
	presenter *dto.Presenter
	audit     *audit.Dispatcher
}

func NewEmployeeHandler(db *gorm.DB, presenter *dto.Presenter, audit *audit.Dispatcher) *EmployeeHandler {
	return &EmployeeHandler{db: db, presenter: presenter, audit: audit}
}

// ======================================================
// LIST (?status=)
// ======================================================
func (h *EmployeeHandler) List(c *gin.Context) {
	p := paginate(c)

	q := h.db.WithContext(c.Request.Context()).Model(&models.Employee{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var employees []models.Employee
	total, err := findPage(q.Order("id ASC"), p, &employees, "User")
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, dto.Map(employees, dto.NewEmployeeList), total, p.page, p.limit)
}

func (h *EmployeeHandler) Retrieve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	e, err := h.load(c, id)
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, h.presenter.EmployeeDetail(c.Request.Context(), *e))
}

// ======================================================
// UPDATE STATUS (admin or the employee themself)
// ======================================================
func (h *EmployeeHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.StatusUpdate
	if !bindJSON(c, &req) {
		return
	}

	e, err := h.load(c, id)
	if err != nil {
		fail(c, err)
		return
	}

	actor := middleware.SubjectFrom(c)
	if !actor.Is(policy.RoleAdmin) && e.UserID != actor.UserID {
		fail(c, httperr.ErrNotOwner)
		return
	}

	from := e.Status
	if req.Status == from {
		httpresp.OK(c, h.presenter.EmployeeDetail(c.Request.Context(), *e))
		return
	}

	e.Status = req.Status
	if err := h.db.WithContext(c.Request.Context()).
		Model(e).
		Select("status", "updated_at").
		Updates(e).Error; err != nil {
		fail(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "employee_status_changed",
		Entity:   "employee",
		EntityID: &e.ID,
		Metadata: map[string]string{"from": from, "to": e.Status},
	})

	httpresp.OK(c, h.presenter.EmployeeDetail(c.Request.Context(), *e))
}

func (h *EmployeeHandler) load(c *gin.Context, id uint) (*models.Employee, error) {
	var e models.Employee
	if err := h.db.WithContext(c.Request.Context()).
		Preload("User").
		Preload("WorkPosition").
		First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}
