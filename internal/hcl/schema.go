package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot lists every top-level block a settings file may contain. Both
// blocks are optional and may appear at most once per file.
type fileRoot struct {
	Quantize *quantizeBlock `hcl:"quantize,block"`
	Logging  *loggingBlock  `hcl:"logging,block"`
}

// quantizeBlock mirrors the --inplace and --verbose flags.
type quantizeBlock struct {
	InPlace hcl.Expression `hcl:"inplace,optional"`
	Verbose hcl.Expression `hcl:"verbose,optional"`
}

// loggingBlock mirrors the --log-level and --log-format flags.
type loggingBlock struct {
	Level  hcl.Expression `hcl:"level,optional"`
	Format hcl.Expression `hcl:"format,optional"`
}
