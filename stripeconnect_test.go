package stripeconnect_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stripeconnect "github.com/jt-helsinki/stripe-connect"
	"github.com/jt-helsinki/stripe-connect/providers"
	"github.com/jt-helsinki/stripe-connect/providers/mocks"
	prometheusprovider "github.com/jt-helsinki/stripe-connect/providers/prometheus"
)

func TestNewConfig(t *testing.T) {
	cfg, err := stripeconnect.NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "stripe-connect", cfg.GetString("api.name"))
	assert.Equal(t, "debug", cfg.GetString("logging.level"))
	assert.Equal(t, 30, cfg.GetInt("payment_processing.stripe.timeout_seconds"))
	assert.False(t, cfg.IsSet("payment_processing.stripe.secret_key"))
	assert.False(t, cfg.IsSet("payment_processing.stripe.authorize_url"))
}

func TestNewRequiresStripeConfig(t *testing.T) {
	cfg, err := stripeconnect.NewConfig()
	require.NoError(t, err)
	_, err = stripeconnect.New(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret key")
}

func TestNewFromConfig(t *testing.T) {
	cfg, err := stripeconnect.NewConfig()
	require.NoError(t, err)
	cfg.Set("payment_processing.stripe.secret_key", "sk_test_x")
	cfg.Set("payment_processing.stripe.client_id", "ca_x")
	cfg.Set("payment_processing.stripe.authorize_url", "https://connect.stripe.com/oauth/token")
	cfg.Set("payment_processing.stripe.deauthorize_url", "https://connect.stripe.com/oauth/deauthorize")
	gateway, err := stripeconnect.New(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, gateway)
}

func TestNewProvidersWiresMetrics(t *testing.T) {
	cfg, err := stripeconnect.NewConfig()
	require.NoError(t, err)
	cfg.Set("payment_processing.stripe.secret_key", "sk_test_x")
	cfg.Set("payment_processing.stripe.client_id", "ca_x")
	cfg.Set("payment_processing.stripe.authorize_url", "https://connect.stripe.com/oauth/token")
	cfg.Set("payment_processing.stripe.deauthorize_url", "https://connect.stripe.com/oauth/deauthorize")
	all, err := stripeconnect.NewProviders(context.Background(), cfg,
		stripeconnect.WithMetrics(prometheusprovider.Provider))
	require.NoError(t, err)
	assert.NotNil(t, all.Logger)
	assert.NotNil(t, all.Metrics)
	assert.NotNil(t, all.PaymentGateway)
}

func TestNewWithPaymentGatewayOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mock := mocks.NewMockPaymentGateway(ctrl)
	mock.EXPECT().GetCustomer(gomock.Any(), "cus_1").Return(&providers.Customer{ID: "cus_1"}, nil)
	gateway, err := stripeconnect.New(context.Background(), viper.New(),
		stripeconnect.WithPaymentGateway(func(ctx context.Context, cfg *viper.Viper) (providers.PaymentGateway, error) {
			return mock, nil
		}))
	require.NoError(t, err)
	customer, err := gateway.GetCustomer(context.Background(), "cus_1")
	require.NoError(t, err)
	assert.Equal(t, "cus_1", customer.ID)
}
