package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/domain"
)

var scan = cli.Command{
	Name:   "scan",
	Usage:  "derives the device accounts of every network and reports their on-chain state",
	Action: scanAction,
}

func scanAction(ctx *cli.Context) error {
	svc, err := buildServices(ctx)
	if err != nil {
		return err
	}

	info, err := svc.sync.RestartSynchronization(context.Background())
	if err != nil {
		return err
	}
	if !info.Connected || !info.AppOpen {
		return fmt.Errorf("device is not ready (connected=%t, app open=%t)", info.Connected, info.AppOpen)
	}

	printApps(svc.state.Apps())
	return nil
}

func printApps(apps []domain.App) {
	for _, app := range apps {
		fmt.Printf("%s (%s):\n", app.Name, app.Status)
		if app.Error != nil {
			fmt.Printf("  error: %s\n", app.Error.Title)
			continue
		}
		if !app.HasBalances() {
			fmt.Println("  no migratable balances")
			continue
		}

		for _, account := range app.Accounts {
			printAccount(account.AccountBase, account.PendingActions(app.ID))
		}
		for _, multisig := range app.MultisigAccounts {
			fmt.Printf("  multisig %s (%d members)\n", multisig.Address, len(multisig.Members))
			printAccount(multisig.AccountBase, multisig.PendingActions(app.ID))
		}
	}
}

func printAccount(base domain.AccountBase, actions []domain.PendingAction) {
	fmt.Printf("  %s  %s\n", base.Path, base.Address)
	if native := base.NativeBalance(); native != nil {
		fmt.Printf("    transferable: %s  total: %s\n", native.Transferable, native.Total)
	}
	if base.Destination != "" {
		fmt.Printf("    destination:  %s\n", base.Destination)
	}
	for _, action := range actions {
		suffix := ""
		if action.Disabled {
			suffix = " (blocked)"
		}
		fmt.Printf("    pending: %s%s\n", action.Label, suffix)
	}
}
