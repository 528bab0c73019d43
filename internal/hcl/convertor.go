package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/labelquant/internal/ctxlog"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeOptional evaluates expr and converts the result into a T. A missing
// attribute evaluates to null and yields a nil pointer.
func decodeOptional[T any](ctx context.Context, name string, expr hcl.Expression, evalCtx *hcl.EvalContext) (*T, error) {
	logger := ctxlog.FromContext(ctx)
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("attribute %q: value is not known", name)
	}

	var out T
	impliedType, err := gocty.ImpliedType(out)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", name, err)
	}

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return nil, fmt.Errorf("attribute %q: cannot convert %s to %s: %w",
			name, val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}
	if !val.Type().Equals(convertedVal.Type()) {
		logger.Debug("Implicitly converted settings value.",
			"attribute", name,
			"from", val.Type().FriendlyName(),
			"to", convertedVal.Type().FriendlyName(),
		)
	}

	if err := gocty.FromCtyValue(convertedVal, &out); err != nil {
		return nil, fmt.Errorf("attribute %q: %w", name, err)
	}
	return &out, nil
}
