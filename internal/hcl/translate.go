package hcl

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/labelquant/internal/config"
)

// translate converts one decoded file into the agnostic model.
func (l *Loader) translate(ctx context.Context, root *fileRoot, evalCtx *hcl.EvalContext) (*config.Model, error) {
	model := &config.Model{}
	var err error

	if q := root.Quantize; q != nil {
		if model.InPlace, err = decodeOptional[bool](ctx, "quantize.inplace", q.InPlace, evalCtx); err != nil {
			return nil, err
		}
		if model.Verbose, err = decodeOptional[bool](ctx, "quantize.verbose", q.Verbose, evalCtx); err != nil {
			return nil, err
		}
	}

	if lg := root.Logging; lg != nil {
		if model.LogLevel, err = decodeOptional[string](ctx, "logging.level", lg.Level, evalCtx); err != nil {
			return nil, err
		}
		if model.LogFormat, err = decodeOptional[string](ctx, "logging.format", lg.Format, evalCtx); err != nil {
			return nil, err
		}
	}

	return model, nil
}
