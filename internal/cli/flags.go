package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"frenetic/internal/app"
)

// connectionOptions are the client settings that can be given on the
// command line.  Only flags the user actually set become overrides, so
// the config file and FRENETIC_* variables keep their precedence.
type connectionOptions struct {
	URL       string
	User      string
	Password  string
	APIKey    string
	TestMode  bool
	Timeout   int
	Retries   int
	MockFiles []string
}

func (o *connectionOptions) bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.URL, "url", "", "API root URL")
	flags.StringVar(&o.User, "user", "", "Basic auth user")
	flags.StringVar(&o.Password, "password", "", "Basic auth password")
	flags.StringVar(&o.APIKey, "api-key", "", "API key (basic auth password for user \"api\")")
	flags.BoolVar(&o.TestMode, "test-mode", false, "Build resources from mocks instead of the API")
	flags.IntVar(&o.Timeout, "timeout", 0, "HTTP timeout in seconds")
	flags.IntVar(&o.Retries, "retries", 0, "HTTP attempts per request")
	flags.StringSliceVar(&o.MockFiles, "mock", nil, "Mock fixture file (repeatable, later files win)")
	_ = viper.BindPFlag("mock", flags.Lookup("mock"))
}

func (o connectionOptions) request(cmd *cobra.Command) app.ConnectRequest {
	overrides := map[string]any{}
	if flagChanged(cmd, "url") {
		overrides["url"] = o.URL
	}
	if flagChanged(cmd, "user") {
		overrides["user"] = o.User
	}
	if flagChanged(cmd, "password") {
		overrides["password"] = o.Password
	}
	if flagChanged(cmd, "api-key") {
		overrides["api_key"] = o.APIKey
	}
	if flagChanged(cmd, "test-mode") {
		overrides["test_mode"] = o.TestMode
	}
	if flagChanged(cmd, "timeout") {
		overrides["timeout"] = o.Timeout
	}
	if flagChanged(cmd, "retries") {
		overrides["retries"] = o.Retries
	}
	return app.ConnectRequest{
		Overrides: overrides,
		MockFiles: resolveStrings(cmd, o.MockFiles, "mock", "mock"),
	}
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
	if fromEnv := viper.GetString(key); fromEnv != "" {
		return fromEnv
	}
	return value
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
	if flag := cmd.InheritedFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
