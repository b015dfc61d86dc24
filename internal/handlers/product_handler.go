package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type ProductHandler struct {
	db        *gorm.DB
	presenter *dto.Presenter
}

func NewProductHandler(db *gorm.DB, presenter *dto.Presenter) *ProductHandler {
	return &ProductHandler{db: db, presenter: presenter}
}

// ======================================================
// LIST (?product_type_id=, ?query=, ?in_stock=true)
// ======================================================
func (h *ProductHandler) List(c *gin.Context) {
	p := paginate(c)
	ctx := c.Request.Context()

	q := h.db.WithContext(ctx).Model(&models.Product{})
	if typeID := queryUint(c, "product_type_id"); typeID != 0 {
		q = q.Where("product_type_id = ?", typeID)
	}
	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+query+"%")
	}
	if c.Query("in_stock") == "true" {
		q = q.Where("count_left > 0")
	}

	var products []models.Product
	total, err := findPage(q.Order("title ASC"), p, &products)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]dto.ProductList, 0, len(products))
	for _, pr := range products {
		out = append(out, h.presenter.ProductList(ctx, pr))
	}
	httpresp.Page(c, out, total, p.page, p.limit)
}

func (h *ProductHandler) Retrieve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	pr, err := h.load(c, id)
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, h.presenter.ProductDetail(c.Request.Context(), *pr))
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.ProductUpdate
	if !bindJSON(c, &req) {
		return
	}

	pr, err := h.load(c, id)
	if err != nil {
		fail(c, err)
		return
	}

	if req.Title != nil {
		pr.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		pr.Description = *req.Description
	}
	if req.Photo != nil {
		pr.Photo = *req.Photo
	}
	if req.CountLeft != nil {
		pr.CountLeft = *req.CountLeft
	}
	if req.ProductTypeID.Set {
		if req.ProductTypeID.Valid {
			if err := mustExist(c, h.db, &models.ProductType{}, req.ProductTypeID.ID, "product_type_id"); err != nil {
				fail(c, err)
				return
			}
		}
		pr.ProductTypeID = req.ProductTypeID.Ptr()
		pr.ProductType = nil
	}

	if err := h.db.WithContext(c.Request.Context()).Omit("ProductType").Save(pr).Error; err != nil {
		fail(c, err)
		return
	}

	pr, err = h.load(c, id)
	if err != nil {
		fail(c, err)
		return
	}
	httpresp.OK(c, h.presenter.ProductDetail(c.Request.Context(), *pr))
}

func (h *ProductHandler) load(c *gin.Context, id uint) (*models.Product, error) {
	var pr models.Product
	if err := h.db.WithContext(c.Request.Context()).
		Preload("ProductType").
		First(&pr, id).Error; err != nil {
		return nil, err
	}
	return &pr, nil
}
