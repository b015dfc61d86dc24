package models

import (
	"reflect"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-backoffice/internal/validation"
)

// uniqueCheck describes one unique column enforced before a write.
type uniqueCheck struct {
	column string
	field  string
	value  any
}

// validateRow runs struct-tag validation plus the unique checks against the table of
// model, excluding the row with the given id. Any violation is returned as
// validation.Errors so the write never reaches the database.
func validateRow(tx *gorm.DB, model any, id uint, row any, checks ...uniqueCheck) error {
	errs := validation.Struct(row)
	if err := checkUnique(tx, model, id, errs, checks...); err != nil {
		return err
	}
	return errs.Err()
}

func checkUnique(tx *gorm.DB, model any, id uint, errs validation.Errors, checks ...uniqueCheck) error {
	for _, chk := range checks {
		if _, failed := errs[chk.field]; failed || isBlank(chk.value) {
			continue
		}

		q := tx.Session(&gorm.Session{NewDB: true}).
			Model(model).
			Where(chk.column+" = ?", chk.value)
		if id != 0 {
			q = q.Where("id <> ?", id)
		}

		var count int64
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			errs.Add(chk.field, validation.ReasonUnique)
		}
	}
	return nil
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	return rv.IsZero()
}
