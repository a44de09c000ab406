package types

// DefaultAccepts is the media type requested when none is configured.
const DefaultAccepts = "application/hal+json"

// RecognizedOptions lists every configuration key the client understands.
// Anything else found in a config file, the environment or explicit
// overrides is dropped.
var RecognizedOptions = []string{
	"url",
	"user",
	"password",
	"api_key",
	"version",
	"accepts",
	"test_mode",
	"timeout",
	"retries",
	"retry_delay_ms",
}

// Config is the merged client configuration.
type Config struct {
	URL          string `mapstructure:"url" yaml:"url"`
	User         string `mapstructure:"user" yaml:"user,omitempty"`
	Password     string `mapstructure:"password" yaml:"password,omitempty"`
	APIKey       string `mapstructure:"api_key" yaml:"api_key,omitempty"`
	Version      string `mapstructure:"version" yaml:"version,omitempty"`
	Accepts      string `mapstructure:"accepts" yaml:"accepts,omitempty"`
	TestMode     bool   `mapstructure:"test_mode" yaml:"test_mode,omitempty"`
	TimeoutSec   int    `mapstructure:"timeout" yaml:"timeout,omitempty"`
	Retries      int    `mapstructure:"retries" yaml:"retries,omitempty"`
	RetryDelayMs int    `mapstructure:"retry_delay_ms" yaml:"retry_delay_ms,omitempty"`
}

// IsRecognizedOption reports whether key is one of RecognizedOptions.
func IsRecognizedOption(key string) bool {
	for _, option := range RecognizedOptions {
		if option == key {
			return true
		}
	}
	return false
}
