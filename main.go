package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"stegocore/config"
	"stegocore/internal/applog"
)

const version = "1.0.0"

func main() {
	app := cli.NewApp()
	app.Name = "stegocli"
	app.Usage = "hide and reveal payloads in image pixels or emoji text"
	app.Version = version
	app.Flags = globalFlags()
	app.Commands = []cli.Command{
		hideImageCommand(),
		revealImageCommand(),
		hideEmojiCommand(),
		revealEmojiCommand(),
		capacityCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "stegocli: %v\n", err)
		os.Exit(1)
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load defaults from `FILE`",
		},
		cli.StringFlag{
			Name:  "level, l",
			Usage: "logging level [debug|info|warn|error]",
			Value: "info",
		},
	}
}

// loadDefaults resolves the config file flag against config.DefaultConfig,
// falling back silently to the built-in defaults when no file is given.
func loadDefaults(c *cli.Context) *config.Defaults {
	if path := c.GlobalString("config"); path != "" {
		if conf, err := config.Load(path); err == nil {
			return conf
		}
	}
	conf := config.DefaultConfig()
	return &conf
}

func newLogger(c *cli.Context) applog.Logger {
	levelName := c.GlobalString("level")
	if !c.GlobalIsSet("level") {
		levelName = loadDefaults(c).LogLevel
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	return applog.New(level)
}
