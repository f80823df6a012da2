package main

import (
	"fmt"

	"github.com/urfave/cli"

	"stegocore/pipeline"
)

func capacityCommand() cli.Command {
	return cli.Command{
		Name:      "capacity",
		Usage:     "report how many payload bytes an image can carry",
		ArgsUsage: "<width> <height>",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "depth, d"},
			cli.BoolFlag{Name: "alpha, a"},
			cli.BoolFlag{Name: "encrypt, e"},
			cli.StringFlag{Name: "name", Value: "payload"},
			cli.StringFlag{Name: "mime", Value: "application/octet-stream"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.NewExitError("usage: capacity <width> <height>", 1)
			}
			defaults := loadDefaults(c)
			var width, height int
			if _, err := fmt.Sscanf(c.Args().Get(0), "%d", &width); err != nil {
				return cli.NewExitError("invalid width", 1)
			}
			if _, err := fmt.Sscanf(c.Args().Get(1), "%d", &height); err != nil {
				return cli.NewExitError("invalid height", 1)
			}

			depth := defaults.Depth
			if c.IsSet("depth") {
				depth = c.Int("depth")
			}
			useAlpha := defaults.UseAlpha
			if c.IsSet("alpha") {
				useAlpha = c.Bool("alpha")
			}

			report, err := pipeline.EstimateCapacity(width, height, depth, useAlpha, c.Bool("encrypt"), c.String("name"), c.String("mime"))
			if err != nil {
				return err
			}
			fmt.Printf("header_size:         %d bytes\n", report.HeaderSize)
			fmt.Printf("payload_capacity:    %d bytes\n", report.PayloadCapacity)
			fmt.Printf("alpha_capacity_gain:  %d bytes\n", report.AlphaCapacityGain)
			return nil
		},
	}
}
