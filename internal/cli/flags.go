package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schoolmenu/internal/adapters"
	"schoolmenu/internal/app"
)

func newAppService(cmd *cobra.Command) (app.Service, error) {
	service := app.NewService()
	clock, err := adapters.FixedClock(resolveString(cmd, lookupString(cmd, "now"), "now", "now"))
	if err != nil {
		return app.Service{}, err
	}
	service.Clock = clock
	return service, nil
}

// sourceOptions reads the provider settings shared by every command from
// the root persistent flags, falling back to config and environment.
func sourceOptions(cmd *cobra.Command) app.SourceOptions {
	return app.SourceOptions{
		Endpoint:        resolveString(cmd, lookupString(cmd, "graphql-endpoint"), "graphql_endpoint", "graphql-endpoint"),
		TimeoutSec:      resolveInt(cmd, lookupInt(cmd, "graphql-timeout"), "graphql_timeout_sec", "graphql-timeout"),
		PublishLocation: resolveString(cmd, lookupString(cmd, "publish-location"), "publish_location", "publish-location"),
	}
}

func filterItems(cmd *cobra.Command) []string {
	var values []string
	if cmd != nil {
		values, _ = cmd.Flags().GetStringSlice("filter-item")
	}
	return resolveStrings(cmd, values, "filter_items", "filter-item")
}

func lookupString(cmd *cobra.Command, name string) string {
	if cmd == nil {
		return ""
	}
	value, _ := cmd.Flags().GetString(name)
	return value
}

func lookupInt(cmd *cobra.Command, name string) int {
	if cmd == nil {
		return 0
	}
	value, _ := cmd.Flags().GetInt(name)
	return value
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
