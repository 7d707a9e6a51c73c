package main

import (
	"fmt"
	"os"

	"github.com/dargueta/zplimage"
	"github.com/dargueta/zplimage/imageio"
	"github.com/dargueta/zplimage/markup"
	"github.com/urfave/cli/v2"
)

// convertFile loads an image, scales it to the label and converts it.
func convertFile(
	path string, opts zplimage.Options, label markup.LabelOptions,
) (zplimage.Result, error) {
	sourceFile, err := os.Open(path)
	if err != nil {
		return zplimage.Result{}, err
	}
	defer sourceFile.Close()

	widthDots, heightDots := label.Dots()
	img, err := imageio.Load(sourceFile, widthDots, heightDots)
	if err != nil {
		return zplimage.Result{}, fmt.Errorf("%s: %w", path, err)
	}

	result, err := zplimage.ConvertImage(img, opts)
	if err != nil {
		return zplimage.Result{}, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// renderResult checks the payload if requested and returns the text to write
// out: the bare payload when `raw` is set, otherwise a complete label.
func renderResult(
	result zplimage.Result,
	opts zplimage.Options,
	label markup.LabelOptions,
	raw, verify bool,
) (string, error) {
	if verify {
		if err := zplimage.VerifyPayload(result); err != nil {
			return "", fmt.Errorf("payload failed verification: %w", err)
		}
	}
	if raw {
		return result.Payload, nil
	}
	return markup.Label(result, opts, label), nil
}

// writeText writes `text` and a newline to the file at `path`.
func writeText(path, text string) (err error) {
	outFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := outFile.Close(); err == nil {
			err = closeErr
		}
	}()

	_, err = fmt.Fprintln(outFile, text)
	return err
}

func convertImage(ctx *cli.Context) error {
	if ctx.Args().Len() < 1 || ctx.Args().Len() > 2 {
		return cli.Exit("expected an input file and an optional output file", 1)
	}

	opts, label, err := settingsFromFlags(ctx)
	if err != nil {
		return err
	}

	result, err := convertFile(ctx.Args().Get(0), opts, label)
	if err != nil {
		return err
	}

	text, err := renderResult(result, opts, label, ctx.Bool("raw"), ctx.Bool("verify"))
	if err != nil {
		return err
	}

	if ctx.Args().Len() == 2 {
		return writeText(ctx.Args().Get(1), text)
	}
	_, err = fmt.Fprintln(ctx.App.Writer, text)
	return err
}
