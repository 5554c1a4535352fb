package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/lean-widgets/reconciler/pkg/hostval"
	"github.com/lean-widgets/reconciler/pkg/hostval/native"
)

// DecodeArgs turns an OpEvent's raw JSON args (a click's absence of
// payload, an input's string value, a form submission's object of
// fields, ...) into the hostval.Value an event handler expects, using the
// same cons-list and Option conventions pkg/render decodes host-produced
// sequences with. Absent args decode as native.Unit, matching a
// zero-argument handler invocation.
func DecodeArgs(raw json.RawMessage) (hostval.Value, error) {
	if len(raw) == 0 {
		return native.Unit, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("protocol: decode event args: %w", err)
	}
	return jsonToValue(v), nil
}

// jsonToValue recursively lifts a decoded JSON value into a hostval.Value.
// Arrays become cons-lists (tag 0 = nil, tag 1 = cons(head, tail)) and
// objects become association lists of Pair(key, value) cons cells, both
// matching the sequence convention pkg/render's forEachListItem already
// walks for host-produced attrs and children lists.
func jsonToValue(v any) hostval.Value {
	switch t := v.(type) {
	case nil:
		return native.None()
	case string:
		return native.Str(t)
	case bool:
		return native.Bool(t)
	case float64:
		return native.Float(t)
	case []any:
		list := native.NewTagged(0)
		for i := len(t) - 1; i >= 0; i-- {
			list = native.NewTagged(1, jsonToValue(t[i]), list)
		}
		return list
	case map[string]any:
		list := native.NewTagged(0)
		for k, val := range t {
			pair := native.Pair(native.Str(k), jsonToValue(val))
			list = native.NewTagged(1, pair, list)
		}
		return list
	default:
		return native.Str(fmt.Sprintf("%v", t))
	}
}
