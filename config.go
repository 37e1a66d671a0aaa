package stripeconnect

import (
	"github.com/spf13/viper"

	"github.com/jt-helsinki/stripe-connect/internal/utils"
)

// ConfigDefaults are the default values for the config file
var ConfigDefaults = map[string]interface{}{
	`logging.level`: `debug`,
	`logging.tags`:  []string{`operation`, `account`, `context_id`, `error`},
	`payment_processing.stripe.timeout_seconds`: 30,
}

// LoadConfig loads a config file from the given path(if it exists) and sets the ConfigDefaults.
// The Stripe secret key, client id and OAuth endpoint urls have no defaults and must be
// supplied under payment_processing.stripe.*
func LoadConfig(apiName, filePath, envPrefix string) (*viper.Viper, error) {
	v := viper.New()
	if filePath != "" {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, utils.WrapError(err, "failed to read config file")
		}
	}
	if envPrefix != "" {
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	v.SetDefault("api.name", apiName)
	for k, val := range ConfigDefaults {
		v.SetDefault(k, val)
	}
	return v, nil
}

// NewConfig returns a config with defaults set and environment variables bound
// under the STRIPE_CONNECT prefix
func NewConfig() (*viper.Viper, error) {
	return LoadConfig("stripe-connect", "", "STRIPE_CONNECT")
}
