// internal/utils/projector.go
package utils

import (
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjectedTimeLayout is the single textual encoding every timestamp is
// normalized to before leaving the service.
const ProjectedTimeLayout = time.RFC3339

// Project normalizes a document into a plain JSON-safe structure:
// ids become canonical strings, timestamps become a fixed UTC text
// encoding, the internal soft-delete marker is stripped, everything else
// passes through unchanged. It recurses over maps, slices and structs,
// never mutates its input, and applying it twice yields the same result
// as applying it once.
func Project(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case uuid.UUID:
		return val.String()
	case *uuid.UUID:
		if val == nil {
			return nil
		}
		return val.String()
	case time.Time:
		return val.UTC().Format(ProjectedTimeLayout)
	case *time.Time:
		if val == nil {
			return nil
		}
		return val.UTC().Format(ProjectedTimeLayout)
	case gorm.DeletedAt:
		if !val.Valid {
			return nil
		}
		return val.Time.UTC().Format(ProjectedTimeLayout)
	case decimal.Decimal:
		return val.String()
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			if k == "deleted_at" {
				continue
			}
			out[k] = Project(item)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return Project(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Project(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, ok := iter.Key().Interface().(string)
			if !ok || key == "deleted_at" {
				continue
			}
			out[key] = Project(iter.Value().Interface())
		}
		return out
	case reflect.Struct:
		return projectStruct(rv)
	default:
		return v
	}
}

func projectStruct(rv reflect.Value) map[string]interface{} {
	out := make(map[string]interface{})
	projectStructInto(rv, out)
	return out
}

func projectStructInto(rv reflect.Value, out map[string]interface{}) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != "" {
			continue
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			projectStructInto(rv.Field(i), out)
			continue
		}

		name, omitEmpty := jsonFieldName(field)
		if name == "" || name == "deleted_at" {
			continue
		}

		value := rv.Field(i)
		if omitEmpty && value.IsZero() {
			continue
		}
		out[name] = Project(value.Interface())
	}
}

func jsonFieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false
	}

	parts := strings.Split(tag, ",")
	name := parts[0]
	if name == "" {
		name = field.Name
	}

	omitEmpty := false
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty
}
