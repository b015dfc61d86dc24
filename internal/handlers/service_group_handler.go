package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type ServiceGroupHandler struct {
	db        *gorm.DB
	presenter *dto.Presenter
}

func NewServiceGroupHandler(db *gorm.DB, presenter *dto.Presenter) *ServiceGroupHandler {
	return &ServiceGroupHandler{db: db, presenter: presenter}
}

func (h *ServiceGroupHandler) List(c *gin.Context) {
	p := paginate(c)

	var groups []models.ServiceGroup
	q := h.db.WithContext(c.Request.Context()).Model(&models.ServiceGroup{}).Order("title ASC")
	total, err := findPage(q, p, &groups)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, dto.Map(groups, dto.NewServiceGroupList), total, p.page, p.limit)
}

func (h *ServiceGroupHandler) Retrieve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var g models.ServiceGroup
	if err := h.db.WithContext(c.Request.Context()).First(&g, id).Error; err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, h.presenter.ServiceGroupDetail(c.Request.Context(), g))
}

func (h *ServiceGroupHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.ServiceGroupUpdate
	if !bindJSON(c, &req) {
		return
	}

	var g models.ServiceGroup
	if err := h.db.WithContext(c.Request.Context()).First(&g, id).Error; err != nil {
		fail(c, err)
		return
	}

	applyTitled(req, &g.Title, &g.Description, &g.Image)

	if err := h.db.WithContext(c.Request.Context()).Save(&g).Error; err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, h.presenter.ServiceGroupDetail(c.Request.Context(), g))
}
