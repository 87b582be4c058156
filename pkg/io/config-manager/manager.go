// Package configmanager loads jnl settings from flags, environment variables
// and defaults.
//
// Configuration priority: defaults < environment variables < flags.
// String values may contain ${VAR} placeholders, expanded while decoding.
package configmanager

import (
	"fmt"
	"reflect"

	"github.com/devantler-tech/jnl/pkg/envvar"
	"github.com/devantler-tech/jnl/pkg/fsutil"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys. Each key doubles as the name of the flag bound to it.
const (
	KeyUserConfig   = "userconfig"
	KeyVerbose      = "verbose"
	KeyHiddenFields = "hidden-fields"
	KeyURL          = "url"
	KeyToken        = "token"
	KeyHTTPProxy    = "http-proxy"
	KeyHTTPSProxy   = "https-proxy"
	KeyNoProxy      = "no-proxy"
)

// DefaultUserConfig is the npm user config location used when nothing else is set.
const DefaultUserConfig = "~/.npmrc"

// envBindings lists the environment variables consulted for each key, in priority order.
//
//nolint:gochecknoglobals
var envBindings = map[string][]string{
	KeyUserConfig:   {"NPM_CONFIG_USERCONFIG", "npm_config_userconfig"},
	KeyVerbose:      {"JNL_VERBOSE"},
	KeyHiddenFields: {"JNL_HIDDEN_FIELDS"},
	KeyURL:          {"JNL_URL"},
	KeyToken:        {"JNL_TOKEN"},
	KeyHTTPProxy:    {"HTTP_PROXY", "http_proxy"},
	KeyHTTPSProxy:   {"HTTPS_PROXY", "https_proxy"},
	KeyNoProxy:      {"NO_PROXY", "no_proxy"},
}

// Settings is the resolved configuration for one jnl invocation.
type Settings struct {
	UserConfig   string   `mapstructure:"userconfig"`
	Verbose      bool     `mapstructure:"verbose"`
	HiddenFields []string `mapstructure:"hidden-fields"`
	URL          string   `mapstructure:"url"`
	Token        string   `mapstructure:"token"`
	HTTPProxy    string   `mapstructure:"http-proxy"`
	HTTPSProxy   string   `mapstructure:"https-proxy"`
	NoProxy      string   `mapstructure:"no-proxy"`
}

// ConfigManager resolves Settings with Viper.
type ConfigManager struct {
	Viper    *viper.Viper
	expander envvar.Expander
}

// NewConfigManager creates a ConfigManager with defaults and environment
// bindings registered.
func NewConfigManager() *ConfigManager {
	return &ConfigManager{Viper: InitializeViper()}
}

// NewConfigManagerWithExpander creates a ConfigManager that expands
// placeholders with the given expander.
func NewConfigManagerWithExpander(expander envvar.Expander) *ConfigManager {
	manager := NewConfigManager()
	manager.expander = expander

	return manager
}

// InitializeViper creates a Viper instance with jnl defaults and environment bindings.
func InitializeViper() *viper.Viper {
	viperInstance := viper.New()

	viperInstance.SetDefault(KeyUserConfig, DefaultUserConfig)
	viperInstance.SetDefault(KeyVerbose, false)
	viperInstance.SetDefault(KeyHiddenFields, []string{"_password"})

	for key, envs := range envBindings {
		// BindEnv only fails when called without a key.
		_ = viperInstance.BindEnv(append([]string{key}, envs...)...)
	}

	return viperInstance
}

// BindFlags binds every flag in flags whose name matches a setting key.
func (m *ConfigManager) BindFlags(flags *pflag.FlagSet) error {
	var bindErr error

	flags.VisitAll(func(flag *pflag.Flag) {
		if bindErr != nil {
			return
		}

		if _, known := envBindings[flag.Name]; !known {
			return
		}

		err := m.Viper.BindPFlag(flag.Name, flag)
		if err != nil {
			bindErr = fmt.Errorf("bind flag %q: %w", flag.Name, err)
		}
	})

	return bindErr
}

// Load decodes the current Viper state into Settings and resolves the user
// config path to an absolute path.
func (m *ConfigManager) Load() (*Settings, error) {
	settings := &Settings{}

	err := m.Viper.Unmarshal(settings, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		m.expandHook(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	if settings.UserConfig == "" {
		settings.UserConfig = DefaultUserConfig
	}

	userConfig, err := fsutil.ExpandHomePath(settings.UserConfig)
	if err != nil {
		return nil, fmt.Errorf("resolve npm user config path: %w", err)
	}

	settings.UserConfig = userConfig

	return settings, nil
}

// expandHook expands ${VAR} placeholders in string values.
func (m *ConfigManager) expandHook() mapstructure.DecodeHookFuncKind {
	return func(from reflect.Kind, _ reflect.Kind, data any) (any, error) {
		if from != reflect.String {
			return data, nil
		}

		value, ok := data.(string)
		if !ok {
			return data, nil
		}

		return m.expander.Expand(value), nil
	}
}
