package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from a struct's db-tagged fields.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

// UpsertModel builds an INSERT that falls back to an in-place update when a
// row with the same conflictColumn value already exists. Every db-tagged
// column except the conflict column is overwritten from EXCLUDED, any
// extraSets are appended verbatim, and the affected row's id is returned.
// The conflict column must carry a uniqueness constraint in the schema.
func UpsertModel(table string, model any, conflictColumn string, extraSets ...string) (string, []any, error) {
	conflictColumn = strings.TrimSpace(conflictColumn)
	if conflictColumn == "" {
		return "", nil, fmt.Errorf("upsert conflict column is required")
	}

	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}

	sets := make([]string, 0, len(cols)+len(extraSets))
	conflictSeen := false
	for _, col := range cols {
		if col == conflictColumn {
			conflictSeen = true
			continue
		}
		sets = append(sets, col+" = EXCLUDED."+col)
	}
	if !conflictSeen {
		return "", nil, fmt.Errorf("upsert conflict column %q is not a column of the model", conflictColumn)
	}
	for _, extra := range extraSets {
		extra = strings.TrimSpace(extra)
		if extra != "" {
			sets = append(sets, extra)
		}
	}
	if len(sets) == 0 {
		return "", nil, fmt.Errorf("upsert has no columns to update")
	}

	suffix := "ON CONFLICT (" + conflictColumn + ") DO UPDATE SET " +
		strings.Join(sets, ", ") + " RETURNING id"

	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if tag == "" || tag == "-" {
			continue
		}
		col := strings.TrimSpace(strings.Split(tag, ",")[0])
		if col == "" || col == "-" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}
