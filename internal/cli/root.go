package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jobquest/internal/config"
)

const app = "jobquest"

// Actual version can be specified in build command.
var version = "unknown"

type rootOptions struct {
	cfgFile string
	envFile string
	v       *viper.Viper
}

// NewRootCommand builds the jobquest command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	root := &cobra.Command{
		Use:           app,
		Short:         "jobquest matches a short work-preference questionnaire to job recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.readConfig()
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "a config file (default is jobquest.yaml in current directory)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	opts.v.BindPFlag("log.debug", root.PersistentFlags().Lookup("debug"))
	opts.v.BindPFlag("log.json", root.PersistentFlags().Lookup("json"))

	root.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newTakeCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (o *rootOptions) readConfig() error {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", o.envFile, err)
		}
	}

	config.SetDefaults(o.v)
	if err := config.BindEnv(o.v); err != nil {
		return err
	}

	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
		if err := o.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", o.cfgFile, err)
		}
		return nil
	}

	o.v.AddConfigPath(".")
	o.v.SetConfigName(app)
	o.v.SetConfigType("yaml")
	if err := o.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func (o *rootOptions) load() (*config.Config, error) {
	return config.Load(o.v)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version)
		},
	}
}
