package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	cli := cli.App{
		Name:  "zplimage",
		Usage: "Convert images to ZPL graphic fields for label printers",
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "Convert one image to a ZPL label",
				Action:    convertImage,
				ArgsUsage: "INPUT_FILE [OUTPUT_FILE]",
				Flags: append(
					conversionFlags(),
					&cli.BoolFlag{
						Name:  "raw",
						Usage: "write only the encoded payload instead of a full label",
					},
					&cli.BoolFlag{
						Name:  "verify",
						Usage: "decode the payload again and check it against the bitmap size",
					},
				),
			},
			{
				Name:      "batch",
				Usage:     "Convert several images and write a CSV report",
				Action:    batchConvert,
				ArgsUsage: "REPORT_CSV INPUT_FILE...",
				Flags: append(
					conversionFlags(),
					&cli.BoolFlag{
						Name:  "write-labels",
						Usage: "also write each label next to its input, with a .zpl extension",
					},
				),
			},
		},
	}

	err := cli.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}
