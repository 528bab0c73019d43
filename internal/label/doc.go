// Package label defines the label model shared by the reference and target
// files, and the line-oriented parser that turns a label file into a lazy
// stream of labels.
//
// Two line shapes are understood. A line with a single field is a bare
// timestamp in seconds. A line with two or more tab-separated fields is an
// Audacity-style label: start, end and an optional text. Shapes may be mixed
// within one file; each line is decoded on its own.
package label
