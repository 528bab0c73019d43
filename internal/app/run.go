package app

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/labelquant/internal/ctxlog"
	"github.com/specialistvlad/labelquant/internal/fsutil"
	"github.com/specialistvlad/labelquant/internal/label"
	"github.com/specialistvlad/labelquant/internal/quantize"
	"github.com/specialistvlad/labelquant/internal/report"
)

// Run quantizes the target file against the reference file. Nothing is
// written to the output (stdout or the target file) unless every label was
// read and quantized successfully.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if err := ctx.Err(); err != nil {
		return err
	}

	out, summary, err := a.quantize(ctx)
	if err != nil {
		return err
	}

	if a.config.InPlace {
		if err := fsutil.ReplaceFile(a.config.TargetPath, []byte(out)); err != nil {
			return fmt.Errorf("failed to write target labels %s: %w", a.config.TargetPath, err)
		}
		logger.Info("Target file rewritten.", "path", a.config.TargetPath)
	} else if _, err := io.WriteString(a.outW, out); err != nil {
		return fmt.Errorf("failed to write quantized labels: %w", err)
	}

	if err := report.WriteSummary(a.errW, summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	logger.Info("Quantization finished.",
		"adjusted_values", summary.Count,
		"total_adjustment", summary.Total,
		"average_adjustment", summary.Average(),
	)
	logger.Debug("App.Run method finished.")
	return nil
}

// quantize reads both label files and renders the quantized target. Both
// files are closed before it returns, so the target may be rewritten safely.
func (a *App) quantize(ctx context.Context) (string, report.Summary, error) {
	logger := ctxlog.FromContext(ctx)
	var summary report.Summary

	ref, err := label.Open(a.config.ReferencePath)
	if err != nil {
		return "", summary, fmt.Errorf("failed to open reference labels: %w", err)
	}
	defer ref.Close()

	target, err := label.Open(a.config.TargetPath)
	if err != nil {
		return "", summary, fmt.Errorf("failed to open target labels: %w", err)
	}
	defer target.Close()

	stream, err := quantize.Quantize(ref, target)
	if err != nil {
		return "", summary, fmt.Errorf("failed to read reference labels: %w", err)
	}
	logger.Debug("Reference labels loaded.", "path", ref.Path(), "count", stream.Reference().Len())

	var lines []string
	for stream.Next() {
		res := stream.Result()
		lines = append(lines, report.Line(res))
		summary.Add(res)
		if a.config.Verbose {
			if err := report.WriteDiagnostic(a.errW, res); err != nil {
				return "", summary, fmt.Errorf("failed to write diagnostics: %w", err)
			}
		}
	}
	if err := stream.Err(); err != nil {
		return "", summary, fmt.Errorf("failed to quantize target labels: %w", err)
	}
	logger.Debug("Target labels quantized.", "path", target.Path(), "count", len(lines))

	return report.Render(lines), summary, nil
}
