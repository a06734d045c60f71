package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/framectx/internal/model"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var cellsType = cty.List(cty.String)

// translateSetting converts a setting expression into a model setting. An
// omitted or null setting is absent (nil); an empty list is a present but
// empty setting. Without an explicit line the setting reports the line it
// is written on.
func translateSetting(ctx context.Context, expr hcl.Expression, name string) (*model.Setting, error) {
	if !isExprDefined(ctx, expr, name) {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid value of setting '%s': %w", name, diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	line := expr.Range().Start.Line
	cellsVal := val
	if ty := val.Type(); ty.IsObjectType() || ty.IsMapType() {
		if val.Type().IsObjectType() && !val.Type().HasAttribute("call") {
			return nil, fmt.Errorf("setting '%s' object must have a 'call' attribute", name)
		}
		attrs := val.AsValueMap()
		if lineVal, ok := attrs["line"]; ok && !lineVal.IsNull() {
			if err := gocty.FromCtyValue(lineVal, &line); err != nil {
				return nil, fmt.Errorf("invalid line of setting '%s': %w", name, err)
			}
		}
		cellsVal = attrs["call"]
	}

	cells, err := toCells(cellsVal)
	if err != nil {
		return nil, fmt.Errorf("setting '%s': %w", name, err)
	}
	if len(cells) == 0 {
		return model.NewSetting(line, ""), nil
	}
	return model.NewSetting(line, cells[0], cells[1:]...), nil
}

// toCells converts a tuple or list of strings into Go strings.
func toCells(val cty.Value) ([]string, error) {
	if val == cty.NilVal || val.IsNull() {
		return nil, nil
	}
	list, err := convert.Convert(val, cellsType)
	if err != nil {
		return nil, fmt.Errorf("expected a list of strings: %w", err)
	}
	if list.LengthInt() == 0 {
		return nil, nil
	}
	var cells []string
	if err := gocty.FromCtyValue(list, &cells); err != nil {
		return nil, err
	}
	return cells, nil
}
