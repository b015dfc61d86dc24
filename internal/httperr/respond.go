package httperr

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/validation"
)

const pgUniqueViolation = "23505"

// Respond writes the JSON error for err. Unknown errors are logged and reported
// as a bare 500 so internals never leak.
func Respond(c *gin.Context, log *zap.Logger, err error) {
	if fields, ok := validation.As(err); ok {
		Validation(c, fields)
		return
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		out := validation.Errors{}
		for _, fe := range fieldErrs {
			out.Add(fe.Field(), validation.Reason(fe))
		}
		Validation(c, out)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "not_found", "resource not found")
		return
	}

	if field, ok := uniqueViolation(err); ok {
		Validation(c, map[string]string{field: validation.ReasonUnique})
		return
	}

	var be BusinessError
	if errors.As(err, &be) {
		Write(c, be.Status(), be.Code, strings.ReplaceAll(be.Code, "_", " "))
		return
	}

	log.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
	Internal(c, "internal_error", "internal server error")
}

// uniqueViolation recognises unique index violations that slipped past the model
// hooks (concurrent writers). The column is recovered from the constraint name
// when possible.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return columnFromConstraint(pgErr.ConstraintName), true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "non_field_errors", true
	}
	return "", false
}

var indexedTables = []string{
	"appointments", "clients", "discounts", "employees", "news", "product_types",
	"products", "service_groups", "services", "users", "work_positions",
}

// gorm names unique indexes idx_<table>_<column>.
func columnFromConstraint(name string) string {
	rest, ok := strings.CutPrefix(name, "idx_")
	if !ok {
		return "non_field_errors"
	}
	for _, table := range indexedTables {
		if col, found := strings.CutPrefix(rest, table+"_"); found {
			return col
		}
	}
	return "non_field_errors"
}
