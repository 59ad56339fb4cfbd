package main

import (
	"fmt"
	"os"

	"github.com/aretw0/troller/internal/cli"
	"github.com/aretw0/troller/internal/logging"
	"github.com/aretw0/troller/internal/world"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "troller",
	Short: "Troller triggers world effects on a Minecraft server",
	Long: `Troller connects to a Minecraft server's scripting API, lets you pick a
connected player and runs effects such as an air nuke, a bomb stream, a flood
or a bedrock wall from an interactive menu.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		host, _ := cmd.Flags().GetString("host")
		port, _ := cmd.Flags().GetInt("port")
		debug, _ := cmd.Flags().GetBool("debug")
		debug = debug || cli.DebugFromEnv()

		interactive := cli.IsTerminal(os.Stdout)
		interrupts := cli.InstallInterruptHandler(os.Stdout, cli.NewStyler(interactive), os.Exit)
		defer interrupts.Stop()

		return cli.RunSession(cmd.Context(), cli.RunOptions{
			Host:        host,
			Port:        port,
			Debug:       debug,
			Interactive: interactive,
			Logger:      logging.ForDebug(debug),
		})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr (same as DEBUG=1)")
	rootCmd.Flags().String("host", "", "Server host; prompts when empty")
	rootCmd.Flags().Int("port", world.DefaultPort, "Scripting API port")
}
