package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type ServiceHandler struct {
	db        *gorm.DB
	presenter *dto.Presenter
}

func NewServiceHandler(db *gorm.DB, presenter *dto.Presenter) *ServiceHandler {
	return &ServiceHandler{db: db, presenter: presenter}
}

// ======================================================
// LIST (?service_group_id=)
// ======================================================
func (h *ServiceHandler) List(c *gin.Context) {
	p := paginate(c)

	q := h.db.WithContext(c.Request.Context()).Model(&models.Service{})
	if groupID := queryUint(c, "service_group_id"); groupID != 0 {
		q = q.Where("service_group_id = ?", groupID)
	}

	var services []models.Service
	total, err := findPage(q.Order("title ASC"), p, &services)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, dto.Map(services, dto.NewServiceList), total, p.page, p.limit)
}

func (h *ServiceHandler) Retrieve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	s, err := h.load(c, id)
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, h.presenter.ServiceDetail(c.Request.Context(), *s))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.ServiceUpdate
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.load(c, id)
	if err != nil {
		fail(c, err)
		return
	}

	if req.Title != nil {
		s.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	if req.Image != nil {
		s.Image = *req.Image
	}
	if req.Price != nil {
		s.Price = *req.Price
	}
	if req.EmployeePercent != nil {
		s.EmployeePercent = *req.EmployeePercent
	}
	if req.ServiceGroupID.Set {
		if req.ServiceGroupID.Valid {
			if err := mustExist(c, h.db, &models.ServiceGroup{}, req.ServiceGroupID.ID, "service_group_id"); err != nil {
				fail(c, err)
				return
			}
		}
		s.ServiceGroupID = req.ServiceGroupID.Ptr()
		s.ServiceGroup = nil
	}

	if err := h.db.WithContext(c.Request.Context()).Omit("ServiceGroup").Save(s).Error; err != nil {
		fail(c, err)
		return
	}

	s, err = h.load(c, id)
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, h.presenter.ServiceDetail(c.Request.Context(), *s))
}

func (h *ServiceHandler) load(c *gin.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Preload("ServiceGroup").
		First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
