package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// decoder fills a schema input struct from a JSON object one field at a time.
// Input structs hold only pointers, slices and pointers to nested input
// structs, so an absent field stays nil.
type decoder struct {
	violations Violations
	failed     map[string]bool
}

func newDecoder() *decoder {
	return &decoder{failed: make(map[string]bool)}
}

func (d *decoder) fail(path, constraint string) {
	d.failed[path] = true
	d.violations = append(d.violations, Violation{
		Field:      path,
		Constraint: constraint,
		Message:    message(constraint, "", false),
	})
}

// covers reports whether path or one of its parents already failed to decode.
func (d *decoder) covers(path string) bool {
	for failed := range d.failed {
		if path == failed ||
			strings.HasPrefix(path, failed+".") ||
			strings.HasPrefix(path, failed+"[") {
			return true
		}
	}
	return false
}

// object decodes raw into the struct dst. Unknown keys are ignored and null
// values are treated as absent. It reports whether raw was an object.
func (d *decoder) object(raw []byte, dst reflect.Value, prefix string) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		d.fail(prefix, ConstraintObject)
		return false
	}

	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name := jsonName(sf)
		if name == "" {
			continue
		}
		value, ok := fields[name]
		if !ok || isNull(value) {
			continue
		}

		path := joinPath(prefix, name)
		field := dst.Field(i)
		switch {
		case sf.Type.Kind() == reflect.Ptr && sf.Type.Elem().Kind() == reflect.Struct:
			nested := reflect.New(sf.Type.Elem())
			if d.object(value, nested.Elem(), path) {
				field.Set(nested)
			}
		case sf.Type.Kind() == reflect.Slice:
			d.list(value, field, path)
		default:
			if err := json.Unmarshal(value, field.Addr().Interface()); err != nil {
				field.Set(reflect.Zero(sf.Type))
				d.fail(path, ConstraintType)
			}
		}
	}

	return true
}

// list decodes a JSON array element by element so each bad item gets its own path.
func (d *decoder) list(raw []byte, dst reflect.Value, path string) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		d.fail(path, ConstraintType)
		return
	}

	out := reflect.MakeSlice(dst.Type(), len(items), len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		if isNull(item) {
			d.fail(itemPath, ConstraintType)
			continue
		}
		if err := json.Unmarshal(item, out.Index(i).Addr().Interface()); err != nil {
			d.fail(itemPath, ConstraintType)
		}
	}
	dst.Set(out)
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return sf.Name
	default:
		return name
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
