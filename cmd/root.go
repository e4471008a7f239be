// File: cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/openrover/btnav/internal/config"
	"github.com/openrover/btnav/internal/observability"
)

// appConfig is the configuration loaded by the root command's pre-run and
// consumed by subcommands.
var appConfig *config.Config

// NewRootCommand builds the btnav command tree.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:     "btnav",
		Short:   "btnav runs behavior-tree navigation and perception nodes for a mobile robot.",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := initializeViper(cfgFile)
			if err != nil {
				return err
			}

			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				// Fall back to a usable logger so the error itself is visible.
				observability.InitializeLogger(config.LoggerConfig{
					Level: "info", Format: "console", ServiceName: "btnav",
				})
				return err
			}
			appConfig = cfg

			observability.InitializeLogger(cfg.Logger)
			observability.GetLogger().Info("starting btnav", zap.String("version", Version))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./btnav.yaml, then $HOME/.btnav.yaml)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

// Execute runs the command tree under the given context.
func Execute(ctx context.Context) error {
	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		observability.GetLogger().Error("command execution failed", zap.Error(err))
	}
	observability.Sync()
	return err
}

// initializeViper prepares viper with defaults, config file discovery, and
// environment overrides.
func initializeViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	config.SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName("btnav")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("BTNAV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file: defaults and env vars apply.
	}
	return v, nil
}
