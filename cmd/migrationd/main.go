package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/Zondax/polkadot-web-migration-sub005/config"
)

func main() {
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "migrationd"
	app.Usage = "Discovers legacy Ledger accounts and migrates them to the unified Polkadot app"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "seed",
			Usage: "seed of the simulated device, repeated runs with the same seed derive the same accounts",
			Value: "migration-demo",
		},
	}
	app.Commands = append(
		app.Commands,
		&scan,
		&verify,
		&migrate,
		&votes,
	)

	err := app.Run(os.Args)
	if err != nil {
		log.WithError(err).Fatal("command failed")
	}
}
