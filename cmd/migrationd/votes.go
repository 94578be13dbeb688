package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Zondax/polkadot-web-migration-sub005/internal/core/domain"
)

const votesPageSize = 25

var votes = cli.Command{
	Name:   "votes",
	Usage:  "lists the conviction votes still locking discovered accounts",
	Action: votesAction,
}

func votesAction(ctx *cli.Context) error {
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

	for _, app := range svc.state.FilterValidSyncedAppsWithBalances() {
		for _, account := range app.Accounts {
			if err := printVotes(background, svc, app.ID, account.Address); err != nil {
				return err
			}
		}
	}
	return nil
}

func printVotes(ctx context.Context, svc *services, id domain.AppID, address string) error {
	for page := 0; ; page++ {
		list, total, err := svc.indexer.Referenda(ctx, address, page, votesPageSize)
		if err != nil {
			return err
		}
		for _, vote := range list {
			state := "ended"
			if vote.Ongoing {
				state = "ongoing"
			}
			fmt.Printf("%s  %s  referendum #%d  %s (%s, %s)\n",
				id, address, vote.ReferendumIndex, vote.Amount, vote.Conviction, state)
		}
		if (page+1)*votesPageSize >= total || len(list) == 0 {
			return nil
		}
	}
}
