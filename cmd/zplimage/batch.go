package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dargueta/zplimage"
	"github.com/dargueta/zplimage/markup"
	"github.com/gocarina/gocsv"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"
)

// reportRow is one line of the batch report.
type reportRow struct {
	File         string `csv:"file"`
	Format       string `csv:"format"`
	Length       int    `csv:"length"`
	RowLength    int    `csv:"rowlen"`
	Width        int    `csv:"width"`
	Height       int    `csv:"height"`
	PayloadChars int    `csv:"payload_chars"`
}

func newReportRow(path string, result zplimage.Result) reportRow {
	return reportRow{
		File:         path,
		Format:       result.Format.String(),
		Length:       result.Length,
		RowLength:    result.RowLength,
		Width:        result.Width,
		Height:       result.Height,
		PayloadChars: len(result.Payload),
	}
}

func labelPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".zpl"
}

// convertAll converts every input, continuing past failures. Rows are returned
// only for inputs that converted successfully.
func convertAll(
	inputs []string, opts zplimage.Options, label markup.LabelOptions, writeLabels bool,
) ([]reportRow, error) {
	var errs *multierror.Error
	rows := make([]reportRow, 0, len(inputs))

	for _, path := range inputs {
		result, err := convertFile(path, opts, label)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		if writeLabels {
			if err = writeText(labelPath(path), markup.Label(result, opts, label)); err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
		}
		rows = append(rows, newReportRow(path, result))
	}
	return rows, errs.ErrorOrNil()
}

// writeReport writes one CSV row per converted image to the file at `path`.
func writeReport(path string, rows []reportRow) (err error) {
	reportFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := reportFile.Close(); err == nil {
			err = closeErr
		}
	}()

	if err = gocsv.Marshal(rows, reportFile); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func batchConvert(ctx *cli.Context) error {
	if ctx.Args().Len() < 2 {
		return cli.Exit("expected a report file and at least one input file", 1)
	}

	opts, label, err := settingsFromFlags(ctx)
	if err != nil {
		return err
	}

	reportPath := ctx.Args().First()
	rows, conversionErr := convertAll(ctx.Args().Tail(), opts, label, ctx.Bool("write-labels"))

	if err = writeReport(reportPath, rows); err != nil {
		return err
	}

	fmt.Fprintf(
		ctx.App.Writer,
		"Converted %d of %d images, report written to %s.\n",
		len(rows),
		ctx.Args().Len()-1,
		reportPath,
	)
	return conversionErr
}
