// Package cli implements the hyprwirectl commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hyprwire/hyprwire"
	"github.com/hyprwire/hyprwire/internal/config"
	"github.com/hyprwire/hyprwire/internal/logger"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	flagLogLevel  string
	flagSignature string
	flagConfig    string

	rootCmd = &cobra.Command{
		Use:   "hyprwirectl",
		Short: "hyprwirectl - Hyprland IPC client",
		Long: `hyprwirectl talks to a running Hyprland compositor over its local IPC
sockets: it can tail the live event stream, run data queries, forward
dispatchers, and read or set config keywords.`,
		SilenceUsage:      true,
		PersistentPreRunE: initRuntime,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagSignature, "signature", "", "compositor instance signature (defaults to $HYPRLAND_INSTANCE_SIGNATURE)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path")

	// Add commands
	rootCmd.AddCommand(listenCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(dispatchCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(keywordCmd)
	rootCmd.AddCommand(reloadCmd)
}

func initRuntime(cmd *cobra.Command, args []string) error {
	if flagConfig != "" {
		config.SetConfigPath(flagConfig)
	}
	if err := config.Init(); err != nil {
		return err
	}

	level := flagLogLevel
	if level == "" {
		level = config.Get().Logging.LogLevel
	}
	if level != "" {
		logger.SetLevel(level)
	}
	return nil
}

// currentInstance resolves the compositor session from flags, config, then
// the environment.
func currentInstance() (*hyprwire.Instance, error) {
	cfg := config.Get()
	if cfg.Session.RuntimeDir != "" {
		return hyprwire.FromDir(cfg.Session.RuntimeDir), nil
	}
	sig := flagSignature
	if sig == "" {
		sig = cfg.Session.Signature
	}
	if sig != "" {
		return hyprwire.FromSignature(sig)
	}
	return hyprwire.Current()
}
