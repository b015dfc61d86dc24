package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/logger"
	"github.com/BruksfildServices01/salon-backoffice/internal/validation"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// fail renders err through the shared error mapping.
func fail(c *gin.Context, err error) {
	httperr.Respond(c, logger.FromGin(c), err)
}

// bindJSON decodes the body into req; tag failures become field errors and
// malformed JSON a plain 400.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fail(c, err)
		return false
	}
	if errors.Is(err, io.EOF) {
		httperr.BadRequest(c, "invalid_body", "request body is empty")
		return false
	}
	httperr.BadRequest(c, "invalid_body", "request body is not valid JSON")
	return false
}

// paramID parses :id; an unparsable id is reported as not found.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.NotFound(c, "not_found", "resource not found")
		return 0, false
	}
	return uint(id), true
}

func queryUint(c *gin.Context, key string) uint {
	v, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

type pagination struct {
	page   int
	limit  int
	offset int
}

func paginate(c *gin.Context) pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}

	return pagination{page: page, limit: limit, offset: (page - 1) * limit}
}

// findPage counts q and loads one page of it into out. Preloads are applied to
// the page query only.
func findPage[M any](q *gorm.DB, p pagination, out *[]M, preloads ...string) (int64, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}

	page := q.Session(&gorm.Session{})
	for _, rel := range preloads {
		page = page.Preload(rel)
	}
	if err := page.Limit(p.limit).Offset(p.offset).Find(out).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// NotAllowed answers actions the API does not offer on a resource.
func NotAllowed(c *gin.Context) {
	httperr.MethodNotAllowed(c)
}

// mustExist reports a missing referenced row as a field-level invalid_reference.
func mustExist(c *gin.Context, db *gorm.DB, model any, id uint, field string) error {
	var count int64
	if err := db.WithContext(c.Request.Context()).
		Model(model).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return validation.Errors{field: validation.ReasonInvalidReference}
	}
	return nil
}
