package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/simon/config"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon Says in the terminal",
	Long: `simon shows a growing sequence of colored pads and tones.
Repeat it with the mouse or the pad keys; one wrong pad ends the game.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runGame(cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "simon", version)
	},
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.String("config", "", "Path to a YAML config file")
	flags.String("name", "", "Player name, skips the prompt")
	flags.Uint64("seed", 0, "Sequence seed, 0 seeds from the clock")
	flags.Bool("debug", false, "Write debug logs to the log directory")
	flags.String("log-dir", "", "Log directory")
	flags.Bool("mute", false, "Disable audio")

	rootCmd.AddCommand(versionCmd)
}

// loadConfig layers the config file, environment and explicitly set flags
// A .env file in the working directory fills variables the environment leaves unset
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	_ = godotenv.Load()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.Changed("name") {
		cfg.Player, _ = flags.GetString("name")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("log-dir") {
		cfg.LogDir, _ = flags.GetString("log-dir")
	}
	if flags.Changed("mute") {
		mute, _ := flags.GetBool("mute")
		cfg.Audio.Enabled = !mute
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
