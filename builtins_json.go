// builtins_json.go
//
// jsonParse/jsonStringify (§4.6), using segmentio/encoding/json as the
// codec (a drop-in, faster encoding/json replacement already exercised
// elsewhere in the pack). Conversion between the generic decoded tree and
// Values follows the same shape as the teacher's valueToGoJSON/
// goJSONToValue pair, adapted for a single Value type with no int/float
// distinction.
package kodiscript

import (
	"math"

	"github.com/segmentio/encoding/json"
)

func registerJSONBuiltins(register func(string, BuiltinFunc)) {
	register("jsonParse", func(args []Value, _ Applier) (Value, error) {
		s, err := stringArg(args, 0, "jsonParse")
		if err != nil {
			return Null, err
		}
		var x any
		if err := json.Unmarshal([]byte(s), &x); err != nil {
			return Null, runtimeErrorf("invalid JSON: %s", err.Error())
		}
		return goJSONToValue(x), nil
	})
	register("jsonStringify", func(args []Value, _ Applier) (Value, error) {
		gv, err := valueToGoJSON(arg(args, 0))
		if err != nil {
			return Null, runtimeErrorf("json stringify: %s", err.Error())
		}
		b, err := json.Marshal(gv)
		if err != nil {
			return Null, runtimeErrorf("json stringify: %s", err.Error())
		}
		return Str(string(b)), nil
	})
}

func valueToGoJSON(v Value) (any, error) {
	switch v.Kind {
	case KindNull:
		return nil, nil
	case KindBool:
		return v.Data.(bool), nil
	case KindNumber:
		f := v.Data.(float64)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, runtimeErrorf("number %v cannot be represented in JSON", f)
		}
		return f, nil
	case KindString:
		return v.Data.(string), nil
	case KindArray:
		elems := v.Data.(*ArrayValue).Elements
		out := make([]any, len(elems))
		for i, el := range elems {
			gv, err := valueToGoJSON(el)
			if err != nil {
				return nil, err
			}
			out[i] = gv
		}
		return out, nil
	case KindObject:
		obj := v.Data.(*ObjectValue)
		out := make(map[string]any, len(obj.Keys))
		for _, k := range obj.Keys {
			gv, err := valueToGoJSON(obj.Fields[k])
			if err != nil {
				return nil, err
			}
			out[k] = gv
		}
		return out, nil
	default:
		return nil, runtimeErrorf("value of type %s cannot be represented in JSON", v.TypeName())
	}
}

func goJSONToValue(x any) Value {
	switch v := x.(type) {
	case nil:
		return Null
	case bool:
		return BoolVal(v)
	case float64:
		return Number(v)
	case string:
		return Str(v)
	case []any:
		out := make([]Value, len(v))
		for i := range v {
			out[i] = goJSONToValue(v[i])
		}
		return Array(out)
	case map[string]any:
		obj := NewObject()
		for k, vv := range v {
			obj.Set(k, goJSONToValue(vv))
		}
		return ObjectVal(obj)
	default:
		return Null
	}
}
