package stripeconnect

import (
	"context"

	"github.com/spf13/viper"

	"github.com/jt-helsinki/stripe-connect/internal/utils"
	"github.com/jt-helsinki/stripe-connect/providers"
	slogprovider "github.com/jt-helsinki/stripe-connect/providers/slog"
	stripeprovider "github.com/jt-helsinki/stripe-connect/providers/stripe"
)

// Option is a configuration option for the gateway
type Option func(*options)

type options struct {
	logger  providers.LoggingProvider
	metrics providers.MetricsProvider
	gateway func(ctx context.Context, cfg *viper.Viper) (providers.PaymentGateway, error)
}

// WithLogger registers a logging provider
func WithLogger(provider providers.LoggingProvider) Option {
	return func(o *options) {
		o.logger = provider
	}
}

// WithMetrics registers a metrics provider
func WithMetrics(provider providers.MetricsProvider) Option {
	return func(o *options) {
		o.metrics = provider
	}
}

// WithPaymentGateway overrides the payment gateway provider
func WithPaymentGateway(provider func(ctx context.Context, cfg *viper.Viper) (providers.PaymentGateway, error)) Option {
	return func(o *options) {
		o.gateway = provider
	}
}

// New builds a PaymentGateway from the given config. The slog logger is used
// unless another logging provider is registered; metrics are disabled unless a
// metrics provider is registered.
func New(ctx context.Context, cfg *viper.Viper, opts ...Option) (providers.PaymentGateway, error) {
	all, err := NewProviders(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return all.PaymentGateway, nil
}

// NewProviders builds the full provider set from the given config
func NewProviders(ctx context.Context, cfg *viper.Viper, opts ...Option) (*providers.All, error) {
	o := &options{
		logger: slogprovider.Provider,
	}
	for _, opt := range opts {
		opt(o)
	}
	all := &providers.All{}
	if o.gateway != nil {
		gateway, err := o.gateway(ctx, cfg)
		if err != nil {
			return nil, utils.WrapError(err, "failed to initialize payment gateway")
		}
		all.PaymentGateway = gateway
		return all, nil
	}
	logger, err := o.logger(ctx, cfg)
	if err != nil {
		return nil, utils.WrapError(err, "failed to initialize logger")
	}
	all.Logger = logger
	gatewayOpts := []stripeprovider.Option{
		stripeprovider.WithLogger(logger),
	}
	if o.metrics != nil {
		metrics, err := o.metrics(ctx, cfg)
		if err != nil {
			return nil, utils.WrapError(err, "failed to initialize metrics")
		}
		all.Metrics = metrics
		gatewayOpts = append(gatewayOpts, stripeprovider.WithMetrics(metrics))
	}
	gateway, err := stripeprovider.New(stripeprovider.Config{
		SecretKey:      cfg.GetString("payment_processing.stripe.secret_key"),
		ClientID:       cfg.GetString("payment_processing.stripe.client_id"),
		AuthorizeURL:   cfg.GetString("payment_processing.stripe.authorize_url"),
		DeauthorizeURL: cfg.GetString("payment_processing.stripe.deauthorize_url"),
	}, gatewayOpts...)
	if err != nil {
		return nil, err
	}
	all.PaymentGateway = gateway
	return all, nil
}
