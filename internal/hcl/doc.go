// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, parsing, expression
// evaluation against the process environment, and CTY-to-Go conversion of
// the settings found in `quantize` and `logging` blocks.
package hcl
