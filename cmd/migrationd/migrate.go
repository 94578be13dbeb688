package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var migrate = cli.Command{
	Name:   "migrate",
	Usage:  "scans, verifies and transfers every clean selected account to its destination",
	Action: migrateAction,
}

func migrateAction(ctx *cli.Context) error {
	svc, err := buildServices(ctx)
	if err != nil {
		return err
	}

	background := context.Background()
	info, err := svc.sync.RestartSynchronization(background)
	if err != nil {
		return err
	}
	if !info.Connected || !info.AppOpen {
		return fmt.Errorf("device is not ready (connected=%t, app open=%t)", info.Connected, info.AppOpen)
	}

	svc.verification.Reconcile()
	if err := svc.verification.VerifyAll(background); err != nil {
		return err
	}

	result, err := svc.migration.MigrateSelected(background)
	if err != nil {
		return err
	}
	fmt.Printf("migrated %d of %d accounts\n", result.Success, result.Total)

	for id, client := range svc.simulated {
		for _, transfer := range client.Submitted() {
			fmt.Printf("%s  %s -> %s  %s\n", id, transfer.Sender, transfer.Destination, transfer.Amount)
		}
	}
	return nil
}
