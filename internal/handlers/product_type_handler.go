package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type ProductTypeHandler struct {
	db        *gorm.DB
	presenter *dto.Presenter
}

func NewProductTypeHandler(db *gorm.DB, presenter *dto.Presenter) *ProductTypeHandler {
	return &ProductTypeHandler{db: db, presenter: presenter}
}

func (h *ProductTypeHandler) List(c *gin.Context) {
	p := paginate(c)
	ctx := c.Request.Context()

	var types []models.ProductType
	total, err := findPage(h.db.WithContext(ctx).Model(&models.ProductType{}).Order("title ASC"), p, &types)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]dto.ProductTypeList, 0, len(types))
	for _, t := range types {
		out = append(out, h.presenter.ProductTypeList(ctx, t))
	}
	httpresp.Page(c, out, total, p.page, p.limit)
}

func (h *ProductTypeHandler) Retrieve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var t models.ProductType
	if err := h.db.WithContext(c.Request.Context()).First(&t, id).Error; err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, h.presenter.ProductTypeDetail(c.Request.Context(), t))
}

func (h *ProductTypeHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.ProductTypeUpdate
	if !bindJSON(c, &req) {
		return
	}

	var t models.ProductType
	if err := h.db.WithContext(c.Request.Context()).First(&t, id).Error; err != nil {
		fail(c, err)
		return
	}

	applyTitled(req, &t.Title, &t.Description, &t.Image)

	if err := h.db.WithContext(c.Request.Context()).Save(&t).Error; err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, h.presenter.ProductTypeDetail(c.Request.Context(), t))
}

// applyTitled copies the optional title/description/image trio shared by
// product types and service groups.
func applyTitled(req dto.ProductTypeUpdate, title, description, image *string) {
	if req.Title != nil {
		*title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		*description = *req.Description
	}
	if req.Image != nil {
		*image = *req.Image
	}
}
