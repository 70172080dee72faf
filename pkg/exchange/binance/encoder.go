package binance

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"mbx/pkg/core"
)

// Encoder is implemented by request types that build their own parameter list.
type Encoder interface {
	EncodeParams() (core.Params, error)
}

type paramField struct {
	index []int
	name  string
}

var fieldCache sync.Map // reflect.Type -> []paramField

// EncodeParams turns a request value into ordered parameters.
//
// v may be nil, a core.Params, an Encoder, or a struct (or pointer to struct) whose
// fields carry `param:"name"` tags. Fields are emitted in declaration order; nil
// pointers are skipped, as are fields tagged `param:"-"` or not tagged at all.
// Values are rendered verbatim without URL escaping.
func EncodeParams(v any) (core.Params, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case core.Params:
		return t, nil
	case Encoder:
		return t.EncodeParams()
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("encode params: unsupported request type %T", v)
	}

	fields := cachedFields(rv.Type())
	params := make(core.Params, 0, len(fields))
	for _, f := range fields {
		fv := rv.FieldByIndex(f.index)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}

		s, err := formatValue(fv)
		if err != nil {
			return nil, fmt.Errorf("encode param %q: %w", f.name, err)
		}
		params = append(params, core.Param{Key: f.name, Value: s})
	}
	return params, nil
}

// EncodeQuery is EncodeParams followed by Params.Encode.
func EncodeQuery(v any) (string, error) {
	params, err := EncodeParams(v)
	if err != nil {
		return "", err
	}
	return params.Encode(), nil
}

func cachedFields(t reflect.Type) []paramField {
	if v, ok := fieldCache.Load(t); ok {
		return v.([]paramField)
	}

	var fields []paramField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, ok := sf.Tag.Lookup("param")
		if !ok || tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			continue
		}
		fields = append(fields, paramField{index: sf.Index, name: name})
	}

	actual, _ := fieldCache.LoadOrStore(t, fields)
	return actual.([]paramField)
}

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

func formatValue(v reflect.Value) (string, error) {
	if v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer).String(), nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	}
	return "", fmt.Errorf("unsupported kind %s", v.Kind())
}
