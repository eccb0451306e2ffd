// Package cmd implements the mpcrpc command-line interface.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/brokiem/mpc-discordrpc/color"
	"github.com/brokiem/mpc-discordrpc/config"
	"github.com/brokiem/mpc-discordrpc/constant"
	"github.com/brokiem/mpc-discordrpc/discord"
	"github.com/brokiem/mpc-discordrpc/icon"
	"github.com/brokiem/mpc-discordrpc/key"
	"github.com/brokiem/mpc-discordrpc/log"
	"github.com/brokiem/mpc-discordrpc/style"
	"github.com/brokiem/mpc-discordrpc/util"
	"github.com/brokiem/mpc-discordrpc/watch"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("url", "", "Address of the player's variables page")
	lo.Must0(viper.BindPFlag(key.PollURL, rootCmd.PersistentFlags().Lookup("url")))

	rootCmd.PersistentFlags().String("client-id", "", "Discord application ID")
	lo.Must0(viper.BindPFlag(key.PresenceClientID, rootCmd.PersistentFlags().Lookup("client-id")))

	rootCmd.PersistentFlags().BoolP("remaining", "r", false, "Show time remaining instead of time elapsed")
	lo.Must0(viper.BindPFlag(key.PresenceShowRemainingTime, rootCmd.PersistentFlags().Lookup("remaining")))

	rootCmd.Flags().IntP("interval", "i", 0, "Milliseconds between two polls")
	lo.Must0(viper.BindPFlag(key.PollInterval, rootCmd.Flags().Lookup("interval")))
}

// Bounds for the calls made to Discord outside the watch loop.
const (
	connectTimeout = 10 * time.Second
	clearTimeout   = 5 * time.Second
)

// errNoClientID explains how to configure the Discord application.
var errNoClientID = fmt.Errorf(
	"no Discord application id configured, set one with %s or the --client-id flag",
	style.Fg(color.Yellow)(fmt.Sprintf("%s config set %s <id>", constant.App, key.PresenceClientID)),
)

// rootCmd runs the presence daemon.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Mirror what MPC-HC is playing into Discord Rich Presence",
	Long: style.Bold(constant.App) + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Mirror what MPC-HC is playing into Discord Rich Presence"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := config.Load()
		if options.PresenceClientID == "" {
			handleErr(errNoClientID)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		client := discord.New(options.PresenceClientID)
		defer util.Ignore(client.Close)

		connectCtx, cancelConnect := context.WithTimeout(ctx, connectTimeout)
		err := client.Connect(connectCtx)
		cancelConnect()
		if err != nil {
			if errors.Is(err, discord.ErrNotRunning) {
				log.Warn("discord is not running yet, updates will be retried")
			} else {
				log.Warnf("connect to discord: %v", err)
			}
		}

		fmt.Printf("%s watching %s every %s\n", icon.Get(icon.Progress), style.Fg(color.Purple)(options.PollURL), options.PollInterval)
		handleErr(watch.New(options, client).Run(ctx))

		clearCtx, cancel := context.WithTimeout(context.Background(), clearTimeout)
		defer cancel()
		if err := client.ClearActivity(clearCtx); err != nil {
			log.Warnf("clear presence: %v", err)
		}
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
