package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

// NewsHandler is read-only; news is curated outside the API. Only published
// entries are ever visible here.
type NewsHandler struct {
	db        *gorm.DB
	presenter *dto.Presenter
}

func NewNewsHandler(db *gorm.DB, presenter *dto.Presenter) *NewsHandler {
	return &NewsHandler{db: db, presenter: presenter}
}

func (h *NewsHandler) List(c *gin.Context) {
	p := paginate(c)

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.News{}).
		Scopes(models.Published).
		Order("published_at DESC").
		Order("id DESC")

	var news []models.News
	total, err := findPage(q, p, &news)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Page(c, dto.Map(news, dto.NewNewsList), total, p.page, p.limit)
}

func (h *NewsHandler) Retrieve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var n models.News
	if err := h.db.WithContext(c.Request.Context()).
		Scopes(models.Published).
		First(&n, id).Error; err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, h.presenter.NewsDetail(c.Request.Context(), n))
}
