package cmd

import (
	"os"
	"strings"

	"github.com/brokiem/mpc-discordrpc/color"
	"github.com/brokiem/mpc-discordrpc/config"
	"github.com/brokiem/mpc-discordrpc/constant"
	"github.com/brokiem/mpc-discordrpc/mal"
	"github.com/brokiem/mpc-discordrpc/style"
	"github.com/brokiem/mpc-discordrpc/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		standalone := []string{where.EnvConfigPath, mal.EnvClientID}
		exposed := append(slices.Clone(config.EnvExposed), standalone...)
		slices.Sort(exposed)
		for _, env := range exposed {
			if !lo.Contains(standalone, env) {
				env = strings.ToUpper(constant.App + "_" + config.EnvKeyReplacer.Replace(env))
			}
			value := os.Getenv(env)
			present := value != ""

			if setOnly || unsetOnly {
				if !present && setOnly {
					continue
				}

				if present && unsetOnly {
					continue
				}
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
