package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"stegocore/carrier"
	"stegocore/internal/containererr"
	"stegocore/internal/passwd"
	"stegocore/pipeline"
)

func hideImageCommand() cli.Command {
	return cli.Command{
		Name:      "hide-image",
		Usage:     "hide a file inside a carrier image",
		ArgsUsage: "<carrier-image> <payload-file> <output-image>",
		Flags: []cli.Flag{
			cli.BoolFlag{Name: "encrypt, e"},
			cli.BoolFlag{Name: "compress"},
			cli.IntFlag{Name: "depth, d"},
			cli.BoolFlag{Name: "alpha, a"},
			cli.StringFlag{Name: "mime", Value: "application/octet-stream"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 3 {
				return cli.NewExitError("usage: hide-image <carrier-image> <payload-file> <output-image>", 1)
			}
			log := newLogger(c)
			defaults := loadDefaults(c)
			carrierPath, payloadPath, outPath := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

			carrierBytes, err := os.ReadFile(carrierPath)
			if err != nil {
				return err
			}
			img, err := carrier.Decode(carrierBytes)
			if err != nil {
				return err
			}
			payloadBytes, err := os.ReadFile(payloadPath)
			if err != nil {
				return err
			}

			depth := defaults.Depth
			if c.IsSet("depth") {
				depth = c.Int("depth")
			}
			useAlpha := defaults.UseAlpha
			if c.IsSet("alpha") {
				useAlpha = c.Bool("alpha")
			}
			compress := defaults.Compress
			if c.IsSet("compress") {
				compress = c.Bool("compress")
			}

			opts := pipeline.HideImageOptions{
				Encrypt:    c.Bool("encrypt"),
				Compress:   compress,
				Depth:      depth,
				UseAlpha:   useAlpha,
				Iterations: defaults.PBKDF2Iterations,
			}
			if opts.Encrypt {
				pw, err := passwd.Prompt("Password: ")
				if err != nil {
					return err
				}
				opts.Password = pw
			}

			descriptor := pipeline.PayloadDescriptor{
				Name:  filepath.Base(payloadPath),
				Mime:  c.String("mime"),
				Bytes: payloadBytes,
			}
			out, err := pipeline.HideImage(context.Background(), img, descriptor, opts)
			if err != nil {
				return err
			}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := carrier.EncodePNG(f, out); err != nil {
				return err
			}
			log.Infof("hid %d bytes in %s", len(payloadBytes), outPath)
			return nil
		},
	}
}

func revealImageCommand() cli.Command {
	return cli.Command{
		Name:      "reveal-image",
		Usage:     "reveal a payload hidden inside a carrier image",
		ArgsUsage: "<carrier-image> <output-file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.NewExitError("usage: reveal-image <carrier-image> <output-file>", 1)
			}
			log := newLogger(c)
			carrierPath, outPath := c.Args().Get(0), c.Args().Get(1)

			carrierBytes, err := os.ReadFile(carrierPath)
			if err != nil {
				return err
			}
			img, err := carrier.Decode(carrierBytes)
			if err != nil {
				return err
			}

			// Try revealing unencrypted first; only prompt for a password
			// if the carrier turns out to need one.
			revealed, err := pipeline.RevealImage(context.Background(), img, "")
			if errors.Is(err, containererr.ErrMissingPassword) {
				pw, promptErr := passwd.Prompt("Password: ")
				if promptErr != nil {
					return promptErr
				}
				revealed, err = pipeline.RevealImage(context.Background(), img, pw)
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(outPath, revealed.Bytes, 0600); err != nil {
				return err
			}
			log.Infof("revealed %q (%d bytes, encrypted=%v, compressed=%v)",
				revealed.Name, len(revealed.Bytes), revealed.WasEncrypted, revealed.WasCompressed)
			return nil
		},
	}
}
