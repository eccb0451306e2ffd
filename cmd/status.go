package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/brokiem/mpc-discordrpc/color"
	"github.com/brokiem/mpc-discordrpc/config"
	"github.com/brokiem/mpc-discordrpc/discord"
	"github.com/brokiem/mpc-discordrpc/icon"
	"github.com/brokiem/mpc-discordrpc/mpc"
	"github.com/brokiem/mpc-discordrpc/presence"
	"github.com/brokiem/mpc-discordrpc/style"
	"github.com/brokiem/mpc-discordrpc/util"
	"github.com/brokiem/mpc-discordrpc/watch"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolP("json", "j", false, "Print the payload as JSON")
	statusCmd.Flags().BoolP("send", "s", false, "Publish the payload to Discord once")
	statusCmd.SetOut(os.Stdout)
}

// statusCmd polls the player once and shows the presence it maps to.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the presence built from what the player is doing right now",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asJson  = lo.Must(cmd.Flags().GetBool("json"))
			send    = lo.Must(cmd.Flags().GetBool("send"))
			options = config.Load()
		)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var client *discord.Client
		if send {
			if options.PresenceClientID == "" {
				handleErr(errNoClientID)
			}
			client = discord.New(options.PresenceClientID)
			defer util.Ignore(client.Close)
		}

		w := watch.New(options, client)

		erase := util.PrintErasable(fmt.Sprintf("%s Polling %s...", icon.Get(icon.Progress), options.PollURL))
		status, err := w.Source.Fetch(ctx)
		erase()
		handleErr(err)

		payload, err := w.Preview(ctx, status)
		handleErr(err)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(payload))
		} else {
			cmd.Println(renderPayload(status, payload))
		}

		if send {
			handleErr(client.SetActivity(ctx, payload))
			cmd.Printf("%s sent to Discord\n", style.Fg(color.Green)(icon.Get(icon.Success)))
		}
	},
}

// renderPayload draws the payload as a bordered card.
func renderPayload(status mpc.Status, payload presence.Payload) string {
	label := style.New().Faint(true).Width(10).Render
	value := style.New().Bold(true).Render

	rows := []string{
		fmt.Sprintf("%s %s", icon.Get(icon.State(status.State)), style.Fg(style.AccentColor)(status.State.Describe().Display)),
		"",
	}

	add := func(name, v string) {
		if v != "" {
			rows = append(rows, label(name)+value(v))
		}
	}

	add("Details", payload.Details)
	add("State", payload.State)
	if payload.Start != nil {
		add("Started", payload.Start.Format(time.Kitchen))
	}
	if payload.End != nil {
		add("Ends", payload.End.Format(time.Kitchen))
	}
	add("Title", payload.LargeImageText)
	add("Cover", payload.LargeImageKey)

	return style.New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.BorderColor).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))
}
