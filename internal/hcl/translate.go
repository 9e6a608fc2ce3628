package hcl

import (
	"context"
	"fmt"

	"github.com/Jvavscratch/utils/internal/config"
	"github.com/Jvavscratch/utils/internal/ctxlog"
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// apply merges one decoded profile file into the profile.
func (l *Loader) apply(ctx context.Context, f *profileFile, p *config.Profile) error {
	if f.IndentWidth != nil {
		p.IndentWidth = *f.IndentWidth
	}
	if f.MaxDepth != nil {
		p.MaxDepth = *f.MaxDepth
	}
	if f.MaxSteps != nil {
		p.MaxSteps = *f.MaxSteps
	}
	if f.Workers != nil {
		p.Workers = *f.Workers
	}
	if f.LoopVariables != nil {
		p.LoopVariables = append([]string(nil), (*f.LoopVariables)...)
	}
	if f.FreeVariables != nil {
		p.FreeVariables = append([]string(nil), (*f.FreeVariables)...)
	}

	if isExprDefined(ctx, f.FallbackVariables, "fallback_variables") {
		vars, err := translateFallbackVariables(f.FallbackVariables)
		if err != nil {
			return err
		}
		if vars != nil {
			p.FallbackVariables = vars
		}
	}

	if f.SeedList != nil {
		if f.SeedList.Name != nil {
			p.SeedList.Name = *f.SeedList.Name
		}
		if isExprDefined(ctx, f.SeedList.Values, "seed_list.values") {
			values, err := translateSeedValues(f.SeedList.Values)
			if err != nil {
				return err
			}
			if values != nil {
				p.SeedList.Values = values
			}
		}
	}
	return nil
}

// isExprDefined checks if an HCL expression was actually present in the source.
// The decoder populates omitted optional attributes with zero-width synthetic
// expressions, so a nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// translateFallbackVariables turns an object expression into ordered variables.
// cty iterates object attributes by name, so the result is deterministic. A
// null value yields a nil slice; an empty object yields an empty, non-nil one.
func translateFallbackVariables(expr hcl.Expression) ([]config.Variable, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid fallback_variables: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("fallback_variables must be an object, got %s", ty.FriendlyName())
	}

	vars := make([]config.Variable, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		name := k.AsString()
		prim, err := primitive(v)
		if err != nil {
			return nil, fmt.Errorf("fallback variable %q: %w", name, err)
		}
		vars = append(vars, config.Variable{Name: name, Value: prim})
	}
	return vars, nil
}

// translateSeedValues turns a list or tuple expression into seed values.
func translateSeedValues(expr hcl.Expression) ([]cty.Value, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid seed_list.values: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, fmt.Errorf("seed_list.values must be a list, got %s", ty.FriendlyName())
	}

	values := make([]cty.Value, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, v := it.Element()
		prim, err := primitive(v)
		if err != nil {
			return nil, fmt.Errorf("seed_list.values: %w", err)
		}
		values = append(values, prim)
	}
	return values, nil
}

// primitive checks that a value is a known string, number or bool.
func primitive(v cty.Value) (cty.Value, error) {
	if v.IsNull() || !v.IsKnown() {
		return cty.NilVal, fmt.Errorf("value must be known and non-null")
	}
	if !v.Type().IsPrimitiveType() {
		return cty.NilVal, fmt.Errorf("value must be a string, number or bool, got %s", v.Type().FriendlyName())
	}
	return v, nil
}
