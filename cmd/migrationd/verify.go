package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var verify = cli.Command{
	Name:   "verify",
	Usage:  "confirms every selected destination address on the device screen",
	Action: verifyAction,
}

func verifyAction(ctx *cli.Context) error {
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

	for id, entries := range svc.state.VerificationEntries() {
		for _, entry := range entries {
			fmt.Printf("%s  %s  %s\n", id, entry.Address, entry.Status)
		}
	}
	return nil
}
