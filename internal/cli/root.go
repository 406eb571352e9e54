package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schoolmenu/internal/adapters"
	"schoolmenu/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "SCHOOLMENU"

type RootConfig struct {
	ConfigFile      string
	LogLevel        string
	Endpoint        string
	TimeoutSec      int
	PublishLocation string
	FilterItems     []string
	Now             string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		log.Error().Str("kind", string(types.KindOf(err))).Msg(errorMessage(err))
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "schoolmenu",
		Short:         "Resolve published school lunch menus for display",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.StringVar(&cfg.Endpoint, "graphql-endpoint", adapters.DefaultGraphQLEndpoint, "GraphQL endpoint of the menu provider")
	flags.IntVar(&cfg.TimeoutSec, "graphql-timeout", 30, "Per-request GraphQL timeout in seconds")
	flags.StringVar(&cfg.PublishLocation, "publish-location", string(types.PublishLocationWebsite), "Menu publish location")
	flags.StringSliceVar(&cfg.FilterItems, "filter-item", nil, "Additional item names to hide (repeatable)")
	flags.StringVar(&cfg.Now, "now", "", "Evaluate the menu as of this time (RFC3339 or YYYY-MM-DD)")
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("graphql_endpoint", flags.Lookup("graphql-endpoint"))
	_ = viper.BindPFlag("graphql_timeout_sec", flags.Lookup("graphql-timeout"))
	_ = viper.BindPFlag("publish_location", flags.Lookup("publish-location"))
	_ = viper.BindPFlag("filter_items", flags.Lookup("filter-item"))
	_ = viper.BindPFlag("now", flags.Lookup("now"))

	cmd.AddCommand(newRenderCommand())
	cmd.AddCommand(newFetchCommand())
	cmd.AddCommand(newMenuTypesCommand())
	cmd.AddCommand(newSitesCommand())
	return cmd
}

func initConfig(configFile string) error {
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("schoolmenu")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/schoolmenu")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

// setupLogging writes console logs to stderr so command output on stdout
// stays machine readable.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	switch types.KindOf(err) {
	case types.ErrorKindConfig:
		return 2
	case types.ErrorKindValidation:
		return 3
	case types.ErrorKindNotFound:
		return 4
	case types.ErrorKindAmbiguity:
		return 5
	case types.ErrorKindTransport, types.ErrorKindAPI:
		return 6
	}
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeFailedPrecondition:
		return 3
	case errbuilder.CodeNotFound:
		return 4
	case errbuilder.CodeAlreadyExists:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var menuErr *types.MenuError
	if errors.As(err, &menuErr) {
		return err.Error()
	}
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
