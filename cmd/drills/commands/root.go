package commands

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"drills/internal/app"
	"drills/internal/domain"
	"drills/internal/log"
)

var (
	cfgFile string
	cfg     *viper.Viper
	appCtx  *app.App
)

// Execute runs the CLI with the process arguments.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil && !errors.Is(err, domain.ErrAborted) {
		log.Error(err.Error())
	}
	return err
}

// NewRootCmd builds the command tree with fresh configuration state.
func NewRootCmd() *cobra.Command {
	cfgFile = ""
	cfg = viper.New()
	appCtx = nil

	defaults := app.DefaultConfig()
	root := &cobra.Command{
		Use:           "drills",
		Short:         "Small stdin/stdout programming exercises",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			c := app.Config{
				LogLevel:   cfg.GetString("log-level"),
				MaxDigits:  cfg.GetInt("max-digits"),
				MaxSamples: cfg.GetInt("max-samples"),
				SortSize:   cfg.GetInt("sort-size"),
			}
			level, err := log.ParseLevel(c.LogLevel)
			if err != nil {
				return err
			}
			if err := log.SetLevel(level); err != nil {
				return err
			}
			a, err := app.New(c, log.Logger())
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $HOME/.drills.yaml)")
	flags.String("log-level", defaults.LogLevel, "log level: error, warn, info or debug")
	flags.Int("max-digits", defaults.MaxDigits, "digit capacity of each arith operand")
	flags.Int("max-samples", defaults.MaxSamples, "largest sample accepted by search")
	flags.Int("sort-size", defaults.SortSize, "number of values read by sort")
	for _, name := range []string{"log-level", "max-digits", "max-samples", "sort-size"} {
		if err := cfg.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(arithCmd(), searchCmd(), sortCmd())
	return root
}

func initConfig() error {
	cfg.SetEnvPrefix("drills")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	if cfgFile != "" {
		cfg.SetConfigFile(cfgFile)
		if err := cfg.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", cfgFile)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory: flags and environment only.
		return nil
	}
	cfg.AddConfigPath(home)
	cfg.SetConfigName(".drills")
	cfg.SetConfigType("yaml")
	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "reading config")
	}
	log.Debug("using config file", "path", cfg.ConfigFileUsed())
	return nil
}
