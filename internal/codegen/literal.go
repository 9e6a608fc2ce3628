package codegen

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Null is the literal substituted for anything that cannot be resolved.
const Null = "null"

// FormatValue renders a declared or literal value: strings are quoted,
// numbers and booleans use their literal form and sequences become
// bracketed lists.
func FormatValue(v cty.Value) string {
	if v.IsNull() || !v.IsKnown() {
		return Null
	}
	ty := v.Type()
	switch {
	case ty == cty.String:
		return Quote(v.AsString())
	case ty == cty.Number:
		return formatNumber(v.AsBigFloat())
	case ty == cty.Bool:
		return strconv.FormatBool(v.True())
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		return FormatList(v.AsValueSlice())
	default:
		raw, err := ctyjson.Marshal(v, ty)
		if err != nil {
			return Null
		}
		return Quote(string(raw))
	}
}

// FormatList renders values as a bracketed, comma separated list.
func FormatList(values []cty.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatValue(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Quote renders s as an escaped double-quoted string literal.
func Quote(s string) string {
	return strconv.Quote(s)
}

// NumericText returns the number form of s when s reads as a finite number.
func NumericText(s string) (string, bool) {
	if strings.TrimSpace(s) != s || s == "" {
		return "", false
	}
	n, err := convert.Convert(cty.StringVal(s), cty.Number)
	if err != nil || !n.IsKnown() || n.IsNull() {
		return "", false
	}
	f := n.AsBigFloat()
	if f.IsInf() {
		return "", false
	}
	return formatNumber(f), true
}

func formatNumber(f *big.Float) string {
	if f.IsInt() {
		return f.Text('f', 0)
	}
	f64, _ := f.Float64()
	return strconv.FormatFloat(f64, 'g', -1, 64)
}
