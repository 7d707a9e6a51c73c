package main

import (
	"github.com/dargueta/zplimage"
	"github.com/dargueta/zplimage/markup"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"
)

func conversionFlags() []cli.Flag {
	label := markup.DefaultLabelOptions()
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "black",
			Aliases: []string{"b"},
			Value:   50,
			Usage:   "luminance threshold in percent (1-99); darker pixels are printed",
		},
		&cli.StringFlag{
			Name:    "rotate",
			Aliases: []string{"r"},
			Value:   "N",
			Usage:   "orientation: N (normal), I (inverted), L or B (left), R (right)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "ACS",
			Usage:   "payload encoding: ACS or Z64",
		},
		&cli.BoolFlag{
			Name:  "notrim",
			Value: true,
			Usage: "keep blank margins instead of cropping to the printed area",
		},
		&cli.Float64Flag{
			Name:  "width-cm",
			Value: label.WidthCM,
			Usage: "label width in centimeters; the image is scaled to fit",
		},
		&cli.Float64Flag{
			Name:  "height-cm",
			Value: label.HeightCM,
			Usage: "label height in centimeters; the image is scaled to fit",
		},
		&cli.IntFlag{
			Name:  "darkness",
			Value: label.Darkness,
			Usage: "print darkness in percent, emitted as ^MD",
		},
	}
}

// settingsFromFlags collects and validates the conversion settings. All invalid
// flags are reported together.
func settingsFromFlags(ctx *cli.Context) (zplimage.Options, markup.LabelOptions, error) {
	var result *multierror.Error

	rotation, err := zplimage.ParseRotation(ctx.String("rotate"))
	if err != nil {
		result = multierror.Append(result, err)
	}
	format, err := zplimage.ParseFormat(ctx.String("format"))
	if err != nil {
		result = multierror.Append(result, err)
	}

	opts := zplimage.Options{
		BlackPercent: ctx.Int("black"),
		NoTrim:       ctx.Bool("notrim"),
		Rotation:     rotation,
		Format:       format,
	}
	if err = opts.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	label := markup.LabelOptions{
		WidthCM:  ctx.Float64("width-cm"),
		HeightCM: ctx.Float64("height-cm"),
		Darkness: ctx.Int("darkness"),
	}
	if err = label.Validate(); err != nil {
		result = multierror.Append(result, err)
	}

	return opts, label, result.ErrorOrNil()
}
