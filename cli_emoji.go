package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"stegocore/emojicodec"
	"stegocore/internal/containererr"
	"stegocore/internal/passwd"
	"stegocore/pipeline"
)

func hideEmojiCommand() cli.Command {
	return cli.Command{
		Name:      "hide-emoji",
		Usage:     "hide a text message inside a scaffold of cover emoji",
		ArgsUsage: "<message>",
		Flags: []cli.Flag{
			cli.BoolFlag{Name: "encrypt, e"},
			cli.StringFlag{Name: "theme, t"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.NewExitError("usage: hide-emoji <message>", 1)
			}
			defaults := loadDefaults(c)
			theme := emojicodec.Theme(defaults.EmojiTheme)
			if c.IsSet("theme") {
				theme = emojicodec.Theme(c.String("theme"))
			}
			opts := pipeline.EmojiOptions{
				Encrypt:    c.Bool("encrypt"),
				Theme:      theme,
				Custom:     defaults.CustomEmojiGraphemes,
				Iterations: defaults.PBKDF2Iterations,
			}
			password := ""
			if opts.Encrypt {
				pw, err := passwd.Prompt("Password: ")
				if err != nil {
					return err
				}
				password = pw
			}
			encoded, err := pipeline.HideEmoji(context.Background(), c.Args().Get(0), password, opts)
			if err != nil {
				return err
			}
			fmt.Println(encoded)
			return nil
		},
	}
}

func revealEmojiCommand() cli.Command {
	return cli.Command{
		Name:      "reveal-emoji",
		Usage:     "reveal a message hidden inside emoji text",
		ArgsUsage: "<text-file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.NewExitError("usage: reveal-emoji <text-file>", 1)
			}
			log := newLogger(c)
			defaults := loadDefaults(c)
			raw, err := os.ReadFile(c.Args().Get(0))
			if err != nil {
				return err
			}

			revealed, err := pipeline.RevealEmoji(context.Background(), string(raw), "", defaults.PBKDF2Iterations)
			if errors.Is(err, containererr.ErrMissingPassword) {
				pw, promptErr := passwd.Prompt("Password: ")
				if promptErr != nil {
					return promptErr
				}
				revealed, err = pipeline.RevealEmoji(context.Background(), string(raw), pw, defaults.PBKDF2Iterations)
			}
			if err != nil {
				return err
			}

			fmt.Println(revealed.Text)
			log.Debugf("encrypted=%v", revealed.WasEncrypted)
			return nil
		},
	}
}
