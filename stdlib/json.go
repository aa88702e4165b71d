package stdlib

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/rscript/internal/registry"
	"github.com/cwbudde/rscript/internal/value"
	"github.com/cwbudde/rscript/pkg/token"
)

// registerJSON wires from_json/to_json (spec.md's DOMAIN STACK wiring of
// tidwall/gjson and tidwall/sjson). to_json is registered once per
// primitive type via registry.AdaptFunc, and once each for *Array/*Map as
// a hand-built Entry — for the same reason push/len are hand-built in
// arrays.go: a *value.Array/*value.Map parameter is always Kind
// Pointer, which AdaptFunc would otherwise treat as a by-mutable-
// reference slot.
func registerJSON(reg *registry.Registry) {
	adapt(reg, "from_json", func(s string) (value.Dynamic, error) {
		if !gjson.Valid(s) {
			return value.Dynamic{}, fmt.Errorf("from_json: invalid JSON document")
		}
		return fromGJSON(gjson.Parse(s)), nil
	})

	adapt(reg, "to_json", func(a int64) (string, error) { return marshalJSON(value.Int(a)) })
	adapt(reg, "to_json", func(a float64) (string, error) { return marshalJSON(value.Float(a)) })
	adapt(reg, "to_json", func(a string) (string, error) { return marshalJSON(value.Str(a)) })
	adapt(reg, "to_json", func(a bool) (string, error) { return marshalJSON(value.Bool(a)) })
	adapt(reg, "to_json", func(a value.Char) (string, error) { return marshalJSON(value.Ch(rune(a))) })

	reg.Register(&registry.Entry{
		Name:  "to_json",
		Types: []reflect.Type{value.ArrayType()},
		Modes: []registry.ParamMode{registry.ByValue},
		Call: func(args []*value.Dynamic, pos token.Position) (value.Dynamic, error) {
			s, err := marshalJSON(*args[0])
			if err != nil {
				return value.Dynamic{}, err
			}
			return value.Str(s), nil
		},
	})
	reg.Register(&registry.Entry{
		Name:  "to_json",
		Types: []reflect.Type{value.MapType()},
		Modes: []registry.ParamMode{registry.ByValue},
		Call: func(args []*value.Dynamic, pos token.Position) (value.Dynamic, error) {
			s, err := marshalJSON(*args[0])
			if err != nil {
				return value.Dynamic{}, err
			}
			return value.Str(s), nil
		},
	})
}

// fromGJSON walks a parsed JSON document and rebuilds it as a Dynamic
// tree: objects become *value.Map, arrays become *value.Array, and a
// bare number round-trips as int if its literal carries no fractional
// or exponent part, else as float.
func fromGJSON(r gjson.Result) value.Dynamic {
	switch r.Type {
	case gjson.Null:
		return value.Nil()
	case gjson.False:
		return value.Bool(false)
	case gjson.True:
		return value.Bool(true)
	case gjson.Number:
		if strings.ContainsAny(r.Raw, ".eE") {
			return value.Float(r.Float())
		}
		return value.Int(r.Int())
	case gjson.String:
		return value.Str(r.String())
	case gjson.JSON:
		if r.IsArray() {
			var elems []value.Dynamic
			r.ForEach(func(_, v gjson.Result) bool {
				elems = append(elems, fromGJSON(v))
				return true
			})
			return value.New(value.NewArray(elems))
		}
		m := value.NewMap()
		r.ForEach(func(k, v gjson.Result) bool {
			m.Set(k.String(), fromGJSON(v))
			return true
		})
		return value.New(m)
	default:
		return value.Nil()
	}
}

// marshalJSON serializes d to a JSON string. Composite values are built
// incrementally with sjson.SetRaw, appending each element/property to an
// accumulating document rather than hand-assembling JSON text.
func marshalJSON(d value.Dynamic) (string, error) {
	switch v := d.Raw().(type) {
	case value.Unit:
		return "null", nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case string:
		return encodeJSONString(v)
	case value.Char:
		return encodeJSONString(string(rune(v)))
	case *value.Array:
		out := "[]"
		for i, el := range v.Elements {
			raw, err := marshalJSON(el)
			if err != nil {
				return "", err
			}
			out, err = sjson.SetRaw(out, strconv.Itoa(i), raw)
			if err != nil {
				return "", err
			}
		}
		return out, nil
	case *value.Map:
		out := "{}"
		for _, k := range v.Keys() {
			val, _ := v.Get(k)
			raw, err := marshalJSON(val)
			if err != nil {
				return "", err
			}
			out, err = sjson.SetRaw(out, strings.ReplaceAll(k, ".", "\\."), raw)
			if err != nil {
				return "", err
			}
		}
		return out, nil
	default:
		return "", fmt.Errorf("to_json: cannot serialize a value of type %s", d.TypeName())
	}
}

// encodeJSONString produces a properly escaped JSON string literal by
// routing s through sjson's own escaping (setting it as a field value)
// and reading the escaped token back out with gjson.
func encodeJSONString(s string) (string, error) {
	doc, err := sjson.Set("{}", "v", s)
	if err != nil {
		return "", err
	}
	return gjson.Get(doc, "v").Raw, nil
}
