package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/constants"
	"github.com/hance08/ledger/internal/errhandler"
	"github.com/hance08/ledger/internal/logging"
	"github.com/hance08/ledger/internal/shell"
	"github.com/hance08/ledger/internal/ui/prompts"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootFlags struct {
	ConfigFile string
	LedgerFile string
	TUI        bool
}

// cliContext carries what PersistentPreRunE builds to the subcommands.
type cliContext struct {
	flags rootFlags
	v     *viper.Viper
	cfg   *config.Config
	app   *app.App
}

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := NewRootCmd().Execute(); err != nil {
		errhandler.HandleError(err)
	}
}

func NewRootCmd() *cobra.Command {
	cc := &cliContext{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "ledger is a CLI based personal income and expense tracker",
		Long: `ledger records income and expense transactions, shows monthly summaries
and keeps everything in a plain CSV file.

Run it without a subcommand to get the interactive menu.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cc.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cc.runShell(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cc.flags.ConfigFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVarP(&cc.flags.LedgerFile, "file", "f", "", "ledger file to save to and load from")
	rootCmd.Flags().BoolVar(&cc.flags.TUI, "tui", false, "use interactive forms instead of numbered prompts")

	rootCmd.AddCommand(NewAddCmd(cc))
	rootCmd.AddCommand(NewSummaryCmd(cc))
	rootCmd.AddCommand(NewListCmd(cc))
	rootCmd.AddCommand(NewInfoCmd(cc))

	return rootCmd
}

func (cc *cliContext) init(cmd *cobra.Command) error {
	// a missing .env is fine
	_ = godotenv.Load()

	if err := cc.initConfig(cmd); err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cc.cfg.Log.Level)
	if cc.cfg.ConfigPath != "" {
		logger.Debug("config loaded", "path", cc.cfg.ConfigPath)
	}

	application, err := app.NewApp(cc.cfg, logger)
	if err != nil {
		return err
	}
	cc.app = application
	return nil
}

func (cc *cliContext) initConfig(cmd *cobra.Command) error {
	v := cc.v
	for key, value := range config.Defaults() {
		v.SetDefault(key, value)
	}

	if cc.flags.ConfigFile != "" {
		v.SetConfigFile(cc.flags.ConfigFile)
	} else {
		appDir, err := app.GetAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := createDefaultConfig(v, appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if err := v.BindPFlag("ledger.file", cmd.Root().PersistentFlags().Lookup("file")); err != nil {
		return fmt.Errorf("failed to bind --file: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if cc.flags.ConfigFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}
	if cc.flags.TUI {
		cfg.UI.Mode = constants.UIModeTUI
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	cc.cfg = cfg
	return nil
}

func (cc *cliContext) runShell(cmd *cobra.Command) error {
	var prompter prompts.Prompter
	if cc.cfg.UI.Mode == constants.UIModeTUI {
		prompter = prompts.NewHuhPrompter()
	} else {
		prompter = prompts.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	sh := shell.New(cc.app.Service, prompter, cmd.OutOrStdout(), cc.app.Logger)
	return sh.Run()
}

func createDefaultConfig(v *viper.Viper, appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
