package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brokiem/mpc-discordrpc/auth"
	"github.com/brokiem/mpc-discordrpc/color"
	"github.com/brokiem/mpc-discordrpc/config"
	"github.com/brokiem/mpc-discordrpc/icon"
	"github.com/brokiem/mpc-discordrpc/log"
	"github.com/brokiem/mpc-discordrpc/mal"
	"github.com/brokiem/mpc-discordrpc/open"
	"github.com/brokiem/mpc-discordrpc/style"
	"github.com/brokiem/mpc-discordrpc/title"
	"github.com/brokiem/mpc-discordrpc/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// apiConfigURL is where MyAnimeList users register an API client.
const apiConfigURL = "https://myanimelist.net/apiconfig"

func init() {
	rootCmd.AddCommand(malCmd)
}

// malCmd groups the cover art lookup helpers.
var malCmd = &cobra.Command{
	Use:   "mal",
	Short: "Manage the MyAnimeList cover art lookup",
}

func init() {
	malCmd.AddCommand(malLoginCmd)
	malLoginCmd.Flags().BoolP("open", "o", false, "Open the MyAnimeList API page to create a client")
}

var malLoginCmd = &cobra.Command{
	Use:   "login [client id]",
	Short: "Store a MyAnimeList client ID in the system keyring",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("open")) {
			if err := open.Start(apiConfigURL); err != nil {
				log.Warnf("open browser: %v", err)
			}
		}

		if len(args) == 0 {
			fmt.Printf("Create a client at %s and run %s\n", style.Fg(color.Purple)(apiConfigURL), style.Fg(color.Yellow)("mal login <client id>"))
			return
		}

		id := strings.TrimSpace(args[0])
		if id == "" {
			handleErr(errors.New("client id is empty"))
		}

		handleErr(auth.SetClientID(id))
		fmt.Printf("%s client id saved to the keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	malCmd.AddCommand(malLogoutCmd)
}

var malLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored MyAnimeList client ID",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteClientID())
		fmt.Printf("%s client id removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	malCmd.AddCommand(malCoverCmd)
	malCoverCmd.Flags().BoolP("raw", "r", false, "Look up the title as given, skipping sanitization")
	malCoverCmd.Flags().BoolP("open", "o", false, "Open the cover in the browser")
	malCoverCmd.Flags().Bool("no-cache", false, "Bypass the cover cache")
}

var malCoverCmd = &cobra.Command{
	Use:     "cover [title or file]",
	Short:   "Look up the cover art a title resolves to",
	Args:    cobra.MinimumNArgs(1),
	Example: "  mpcrpc mal cover \"[Group] Sousou_no_Frieren_-_01.mkv\"",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			options = config.Load()
			query   = strings.Join(args, " ")
		)

		if !lo.Must(cmd.Flags().GetBool("raw")) {
			query = title.Sanitize(query, options.Title)
		}

		resolver := &mal.Resolver{Client: mal.NewClient(options.MalClientID)}
		if options.CoverCache && !lo.Must(cmd.Flags().GetBool("no-cache")) {
			resolver.Store = mal.NewCoverStore("")
		}

		ctx, cancel := context.WithTimeout(context.Background(), util.Max(options.CoverTimeout, 10*time.Second))
		defer cancel()

		erase := util.PrintErasable(fmt.Sprintf("%s Searching for %s...", icon.Get(icon.Progress), style.Fg(color.Purple)(query)))
		cover := resolver.Resolve(ctx, query)
		erase()

		if !cover.Resolved() {
			handleErr(fmt.Errorf("no cover for %q: %w", query, cover.Err))
		}

		fmt.Printf("%s %s\n", style.Title(query), style.Fg(style.SecondaryColor)(cover.URI))

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Start(cover.URI))
		}
	},
}
