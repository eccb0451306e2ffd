// Package main is the entry point for mpcrpc.
package main

import (
	"github.com/brokiem/mpc-discordrpc/cmd"
	"github.com/brokiem/mpc-discordrpc/config"
	"github.com/brokiem/mpc-discordrpc/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
