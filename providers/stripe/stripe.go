package stripe

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/palantir/stacktrace"
	"github.com/spf13/viper"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/jt-helsinki/stripe-connect/internal/retry"
	"github.com/jt-helsinki/stripe-connect/providers"
	"github.com/jt-helsinki/stripe-connect/providers/maptags"
	slogprovider "github.com/jt-helsinki/stripe-connect/providers/slog"
)

// Config holds the immutable configuration of the gateway. The secret key
// authenticates API and OAuth calls, the client id identifies the platform, and
// the two URLs are the provider's published OAuth endpoints.
type Config struct {
	SecretKey      string
	ClientID       string
	AuthorizeURL   string
	DeauthorizeURL string
}

// StripeGateway implements providers.PaymentGateway against the Stripe Connect
// API. Customer, card, token, charge and refund traffic goes through the Stripe
// SDK; the OAuth exchanges are raw form posts. The gateway holds no mutable
// state beyond its configuration and is safe for concurrent use.
type StripeGateway struct {
	client     *client.API
	cfg        Config
	httpClient *http.Client
	logger     providers.Logger
	metrics    providers.Metrics
	retry      retry.Policy
}

// Option configures a StripeGateway
type Option func(*StripeGateway)

// WithLogger sets the logger
func WithLogger(logger providers.Logger) Option {
	return func(s *StripeGateway) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics collector
func WithMetrics(metrics providers.Metrics) Option {
	return func(s *StripeGateway) {
		s.metrics = metrics
	}
}

// WithHTTPClient sets the http client used for the OAuth endpoints. Timeouts on
// this client are the only way to bound a pending OAuth exchange.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *StripeGateway) {
		s.httpClient = httpClient
	}
}

// WithBackends overrides the Stripe SDK backends, for tests
func WithBackends(backends *stripe.Backends) Option {
	return func(s *StripeGateway) {
		s.client = &client.API{}
		s.client.Init(s.cfg.SecretKey, backends)
	}
}

// WithSleep overrides the sleep between retry attempts, for tests
func WithSleep(sleep func(d time.Duration)) Option {
	return func(s *StripeGateway) {
		s.retry.Sleep = sleep
	}
}

// New returns a StripeGateway for the given configuration
func New(cfg Config, opts ...Option) (*StripeGateway, error) {
	if cfg.SecretKey == "" {
		return nil, stacktrace.NewError("stripe secret key is required")
	}
	if cfg.ClientID == "" {
		return nil, stacktrace.NewError("stripe client id is required")
	}
	if cfg.AuthorizeURL == "" {
		return nil, stacktrace.NewError("stripe authorize url is required")
	}
	if cfg.DeauthorizeURL == "" {
		return nil, stacktrace.NewError("stripe deauthorize url is required")
	}
	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)
	s := &StripeGateway{
		client: sc,
		cfg:    cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retry: retry.Policy{
			MaxAttempts:  3,
			InitialDelay: time.Second,
			Multiplier:   2,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slogprovider.NewJSONLogger(nil)
	}
	if s.metrics != nil {
		s.metrics.RegisterGauge(providers.MetricAPIRequests, "operation", "outcome")
		s.metrics.RegisterHistogram(providers.MetricAPILatency, "operation")
	}
	return s, nil
}

// Provider is a function that returns a PaymentGateway implementation
// requires payment_processing.stripe.secret_key, payment_processing.stripe.client_id,
// payment_processing.stripe.authorize_url and payment_processing.stripe.deauthorize_url
func Provider(ctx context.Context, config *viper.Viper) (providers.PaymentGateway, error) {
	if !config.IsSet("payment_processing.stripe.secret_key") {
		return nil, stacktrace.NewError("config key 'payment_processing.stripe.secret_key' not found")
	}
	if !config.IsSet("payment_processing.stripe.client_id") {
		return nil, stacktrace.NewError("config key 'payment_processing.stripe.client_id' not found")
	}
	cfg := Config{
		SecretKey:      config.GetString("payment_processing.stripe.secret_key"),
		ClientID:       config.GetString("payment_processing.stripe.client_id"),
		AuthorizeURL:   config.GetString("payment_processing.stripe.authorize_url"),
		DeauthorizeURL: config.GetString("payment_processing.stripe.deauthorize_url"),
	}
	var opts []Option
	if timeout := config.GetInt("payment_processing.stripe.timeout_seconds"); timeout > 0 {
		opts = append(opts, WithHTTPClient(&http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		}))
	}
	return New(cfg, opts...)
}

// CreateCustomer creates a platform customer with the given email and card token
func (s *StripeGateway) CreateCustomer(ctx context.Context, email string, cardToken string) (*providers.Customer, error) {
	ctx = s.tagContext(ctx, "create_customer", "")
	defer s.observe("create_customer", time.Now())
	params := &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
		Email:  stripe.String(email),
	}
	if cardToken != "" {
		params.Source = stripe.String(cardToken)
	}
	c, err := s.client.Customers.New(params)
	s.count("create_customer", err)
	if err != nil {
		return nil, providers.NewCardError("failed to create customer", err)
	}
	return mapCustomer(c), nil
}

// GetCustomer gets a platform customer
func (s *StripeGateway) GetCustomer(ctx context.Context, id string) (*providers.Customer, error) {
	ctx = s.tagContext(ctx, "get_customer", "")
	defer s.observe("get_customer", time.Now())
	c, err := s.client.Customers.Get(id, &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
	})
	s.count("get_customer", err)
	if err != nil {
		return nil, providers.NewCardError("failed to get customer", err)
	}
	return mapCustomer(c), nil
}

// DeleteCustomer deletes a platform customer
func (s *StripeGateway) DeleteCustomer(ctx context.Context, id string) error {
	ctx = s.tagContext(ctx, "delete_customer", "")
	defer s.observe("delete_customer", time.Now())
	_, err := s.client.Customers.Del(id, &stripe.CustomerParams{
		Params: stripe.Params{Context: ctx},
	})
	s.count("delete_customer", err)
	if err != nil {
		return providers.NewCardError("failed to delete customer", err)
	}
	return nil
}

// RetrieveToken retrieves a previously created one-time token
func (s *StripeGateway) RetrieveToken(ctx context.Context, tokenID string) (*providers.Token, error) {
	ctx = s.tagContext(ctx, "retrieve_token", "")
	defer s.observe("retrieve_token", time.Now())
	t, err := s.client.Tokens.Get(tokenID, &stripe.TokenParams{
		Params: stripe.Params{Context: ctx},
	})
	s.count("retrieve_token", err)
	if err != nil {
		return nil, providers.NewCardError("failed to retrieve token", err)
	}
	return mapToken(t), nil
}

// CreateCard stores a tokenized card against a customer
func (s *StripeGateway) CreateCard(ctx context.Context, customerID string, cardToken string) (*providers.Card, error) {
	ctx = s.tagContext(ctx, "create_card", "")
	defer s.observe("create_card", time.Now())
	c, err := s.client.Cards.New(&stripe.CardParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
		Token:    stripe.String(cardToken),
	})
	s.count("create_card", err)
	if err != nil {
		return nil, providers.NewCardError("failed to create card", err)
	}
	return mapCard(c), nil
}

// DeleteCard removes a stored card from a customer
func (s *StripeGateway) DeleteCard(ctx context.Context, customerID string, cardID string) error {
	ctx = s.tagContext(ctx, "delete_card", "")
	defer s.observe("delete_card", time.Now())
	_, err := s.client.Cards.Del(cardID, &stripe.CardParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
	})
	s.count("delete_card", err)
	if err != nil {
		return providers.NewCardError("failed to delete card", err)
	}
	return nil
}

// ListCards lists a customer's stored cards in provider order
func (s *StripeGateway) ListCards(ctx context.Context, customerID string) ([]*providers.Card, error) {
	ctx = s.tagContext(ctx, "list_cards", "")
	defer s.observe("list_cards", time.Now())
	iter := s.client.Cards.List(&stripe.CardListParams{
		ListParams: stripe.ListParams{Context: ctx},
		Customer:   stripe.String(customerID),
	})
	var cards []*providers.Card
	for iter.Next() {
		cards = append(cards, mapCard(iter.Card()))
	}
	err := iter.Err()
	s.count("list_cards", err)
	if err != nil {
		return nil, providers.NewCardError("failed to list cards", err)
	}
	return cards, nil
}

// ListCharges lists charges owned by the connected account, newest first
func (s *StripeGateway) ListCharges(ctx context.Context, accountID string, limit int64) ([]*providers.Charge, error) {
	ctx = s.tagContext(ctx, "list_charges", accountID)
	defer s.observe("list_charges", time.Now())
	params := &stripe.ChargeListParams{
		ListParams: stripe.ListParams{
			Context:       ctx,
			StripeAccount: stripe.String(accountID),
		},
	}
	if limit > 0 {
		if limit > 100 {
			limit = 100
		}
		params.Limit = stripe.Int64(limit)
	}
	iter := s.client.Charges.List(params)
	var charges []*providers.Charge
	for iter.Next() {
		charges = append(charges, mapCharge(iter.Charge()))
	}
	err := iter.Err()
	s.count("list_charges", err)
	if err != nil {
		return nil, providers.NewCardError("failed to list charges", err)
	}
	return charges, nil
}

func (s *StripeGateway) tagContext(ctx context.Context, operation string, accountID string) context.Context {
	tags := maptags.New(nil, nil).
		WithOperation(operation).
		WithContextID(uuid.NewString())
	if accountID != "" {
		tags = tags.WithAccount(accountID)
	}
	return providers.WithTags(ctx, tags)
}

func (s *StripeGateway) observe(operation string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.Observe(providers.MetricAPILatency, time.Since(start).Seconds(), operation)
}

func (s *StripeGateway) count(operation string, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.Inc(providers.MetricAPIRequests, operation, outcome)
}

func mapCustomer(c *stripe.Customer) *providers.Customer {
	cust := &providers.Customer{
		ID:          c.ID,
		Email:       c.Email,
		Description: c.Description,
		Metadata:    c.Metadata,
		CreatedAt:   time.Unix(c.Created, 0),
	}
	if c.DefaultSource != nil {
		cust.DefaultCardID = c.DefaultSource.ID
	}
	return cust
}

func mapCard(c *stripe.Card) *providers.Card {
	return &providers.Card{
		ID:    c.ID,
		Brand: string(c.Brand),
		ExpM:  c.ExpMonth,
		ExpY:  c.ExpYear,
		Last4: c.Last4,
	}
}

func mapToken(t *stripe.Token) *providers.Token {
	tok := &providers.Token{
		ID:        t.ID,
		Type:      string(t.Type),
		Used:      t.Used,
		Livemode:  t.Livemode,
		CreatedAt: time.Unix(t.Created, 0),
	}
	if t.Card != nil {
		tok.Card = mapCard(t.Card)
	}
	return tok
}

func mapCharge(ch *stripe.Charge) *providers.Charge {
	charge := &providers.Charge{
		ID:          ch.ID,
		Amount:      ch.Amount,
		Currency:    string(ch.Currency),
		Description: ch.Description,
		Status:      string(ch.Status),
		Paid:        ch.Paid,
		Refunded:    ch.Refunded,
		Metadata:    ch.Metadata,
		CreatedAt:   time.Unix(ch.Created, 0),
	}
	if ch.Customer != nil {
		charge.CustomerID = ch.Customer.ID
	}
	return charge
}
