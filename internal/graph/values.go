package graph

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// valueOf converts an arbitrary JSON value into a cty value. Scalars keep
// their JSON type, arrays become tuples and objects become objects. Anything
// cty cannot type falls back to its raw text as a string. Null is reported
// through ok=false.
func valueOf(raw json.RawMessage) (val cty.Value, ok bool) {
	if isNull(raw) {
		return cty.NilVal, false
	}
	raw = bytes.TrimSpace(raw)

	ty, err := ctyjson.ImpliedType(raw)
	if err != nil {
		return cty.StringVal(string(raw)), true
	}
	val, err = ctyjson.Unmarshal(raw, ty)
	if err != nil {
		return cty.StringVal(string(raw)), true
	}
	return val, true
}

// textOf renders a scalar JSON value as plain text: strings unquoted, numbers
// and booleans in their literal form. Composite values keep their JSON text.
func textOf(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// scalarOf converts a primitive input value into a cty string or number. The
// project format stores most literals as strings; genuine JSON numbers keep
// their number type.
func scalarOf(raw json.RawMessage) cty.Value {
	if firstByte(raw) == '"' || isNull(raw) {
		return cty.StringVal(textOf(raw))
	}
	val, ok := valueOf(raw)
	if !ok || !val.Type().IsPrimitiveType() {
		return cty.StringVal(textOf(raw))
	}
	return val
}

// stringList decodes a list of strings that may be stored natively or as a
// JSON-encoded string, which is how mutation metadata is written on disk.
func stringList(raw json.RawMessage) []string {
	if isNull(raw) {
		return nil
	}
	if firstByte(raw) == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil
		}
		raw = json.RawMessage(encoded)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, textOf(item))
	}
	return out
}
