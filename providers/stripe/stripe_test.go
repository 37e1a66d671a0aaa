package stripe_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jt-helsinki/stripe-connect/gatewaytest"
	"github.com/jt-helsinki/stripe-connect/providers"
	stripeprovider "github.com/jt-helsinki/stripe-connect/providers/stripe"
)

const (
	customerBody = `{"id":"cus_1","object":"customer","email":"jan@example.com","description":"platform customer","default_source":{"id":"card_1","object":"card"},"metadata":{"tier":"pro"},"created":1700000000}`
	cardBody     = `{"id":"card_1","object":"card","brand":"Visa","exp_month":12,"exp_year":2030,"last4":"4242"}`
	cardListBody = `{"object":"list","url":"/v1/customers/cus_1/sources","has_more":false,"data":[` +
		`{"id":"card_1","object":"card","brand":"Visa","exp_month":12,"exp_year":2030,"last4":"4242"},` +
		`{"id":"card_2","object":"card","brand":"MasterCard","exp_month":6,"exp_year":2028,"last4":"4444"}]}`
	tokenBody = `{"id":"tok_1","object":"token","type":"card","used":false,"livemode":false,"created":1700000000,` +
		`"card":{"id":"card_1","object":"card","brand":"Visa","exp_month":12,"exp_year":2030,"last4":"4242"}}`
	chargeListBody = `{"object":"list","url":"/v1/charges","has_more":false,"data":[` +
		`{"id":"ch_2","object":"charge","amount":2000,"currency":"eur","status":"succeeded","paid":true,"created":1700000100},` +
		`{"id":"ch_1","object":"charge","amount":1000,"currency":"eur","status":"succeeded","paid":true,"created":1700000000}]}`
	cardErrorBody = `{"error":{"type":"card_error","code":"expired_card","message":"Your card has expired."}}`
)

var gatewayFixtures = []*gatewaytest.Fixture{
	{
		Name: "create customer attaches the card token as the default source",
		Handlers: map[string]http.HandlerFunc{
			"POST /v1/customers": respond(http.StatusOK, customerBody),
		},
		Test: func(t *testing.T, ctx context.Context, gateway providers.PaymentGateway, server *gatewaytest.Server) {
			customer, err := gateway.CreateCustomer(ctx, "jan@example.com", "tok_visa")
			require.NoError(t, err)
			assert.Equal(t, "cus_1", customer.ID)
			assert.Equal(t, "jan@example.com", customer.Email)
			assert.Equal(t, "card_1", customer.DefaultCardID)
			assert.Equal(t, "pro", customer.Metadata["tier"])
			calls := server.Calls(http.MethodPost, "/v1/customers")
			require.Len(t, calls, 1)
			assert.Equal(t, "jan@example.com", calls[0].Form.Get("email"))
			assert.Equal(t, "tok_visa", calls[0].Form.Get("source"))
			assert.Empty(t, calls[0].Header.Get("Stripe-Account"))
		},
	},
	{
		Name: "get and delete customer pass through",
		Handlers: map[string]http.HandlerFunc{
			"GET /v1/customers/cus_1":    respond(http.StatusOK, customerBody),
			"DELETE /v1/customers/cus_1": respond(http.StatusOK, `{"id":"cus_1","object":"customer","deleted":true}`),
		},
		Test: func(t *testing.T, ctx context.Context, gateway providers.PaymentGateway, server *gatewaytest.Server) {
			customer, err := gateway.GetCustomer(ctx, "cus_1")
			require.NoError(t, err)
			assert.Equal(t, "cus_1", customer.ID)
			require.NoError(t, gateway.DeleteCustomer(ctx, "cus_1"))
			require.Len(t, server.Calls(http.MethodDelete, "/v1/customers/cus_1"), 1)
		},
	},
	{
		Name: "card operations fail with a card error on the first attempt",
		Handlers: map[string]http.HandlerFunc{
			"POST /v1/customers/cus_1/sources": respond(http.StatusPaymentRequired, cardErrorBody),
		},
		Sleeps: &gatewaytest.SleepRecorder{},
		Test: func(t *testing.T, ctx context.Context, gateway providers.PaymentGateway, server *gatewaytest.Server) {
			_, err := gateway.CreateCard(ctx, "cus_1", "tok_expired")
			require.Error(t, err)
			assert.True(t, providers.IsCardError(err))
			assert.False(t, providers.IsChargeError(err))
			assert.Contains(t, err.Error(), "card has expired")
			// card-domain calls are never retried
			require.Len(t, server.Calls(http.MethodPost, "/v1/customers/cus_1/sources"), 1)
		},
	},
	{
		Name: "create and delete card against a customer",
		Handlers: map[string]http.HandlerFunc{
			"POST /v1/customers/cus_1/sources":          respond(http.StatusOK, cardBody),
			"DELETE /v1/customers/cus_1/sources/card_1": respond(http.StatusOK, `{"id":"card_1","object":"card","deleted":true}`),
		},
		Test: func(t *testing.T, ctx context.Context, gateway providers.PaymentGateway, server *gatewaytest.Server) {
			card, err := gateway.CreateCard(ctx, "cus_1", "tok_visa")
			require.NoError(t, err)
			assert.Equal(t, "card_1", card.ID)
			assert.Equal(t, "Visa", card.Brand)
			assert.Equal(t, int64(12), card.ExpM)
			assert.Equal(t, int64(2030), card.ExpY)
			assert.Equal(t, "4242", card.Last4)
			calls := server.Calls(http.MethodPost, "/v1/customers/cus_1/sources")
			require.Len(t, calls, 1)
			assert.Equal(t, "tok_visa", calls[0].Form.Get("source"))
			require.NoError(t, gateway.DeleteCard(ctx, "cus_1", "card_1"))
		},
	},
	{
		Name: "list cards preserves provider order",
		Handlers: map[string]http.HandlerFunc{
			"GET /v1/customers/cus_1/sources": respond(http.StatusOK, cardListBody),
		},
		Test: func(t *testing.T, ctx context.Context, gateway providers.PaymentGateway, server *gatewaytest.Server) {
			cards, err := gateway.ListCards(ctx, "cus_1")
			require.NoError(t, err)
			require.Len(t, cards, 2)
			assert.Equal(t, "card_1", cards[0].ID)
			assert.Equal(t, "card_2", cards[1].ID)
			assert.Equal(t, "MasterCard", cards[1].Brand)
			assert.Equal(t, "4444", cards[1].Last4)
		},
	},
	{
		Name: "retrieve token returns the card details",
		Handlers: map[string]http.HandlerFunc{
			"GET /v1/tokens/tok_1": respond(http.StatusOK, tokenBody),
		},
		Test: func(t *testing.T, ctx context.Context, gateway providers.PaymentGateway, server *gatewaytest.Server) {
			token, err := gateway.RetrieveToken(ctx, "tok_1")
			require.NoError(t, err)
			assert.Equal(t, "tok_1", token.ID)
			assert.Equal(t, "card", token.Type)
			assert.False(t, token.Used)
			require.NotNil(t, token.Card)
			assert.Equal(t, "card_1", token.Card.ID)
		},
	},
	{
		Name: "list charges scopes the call to the connected account",
		Handlers: map[string]http.HandlerFunc{
			"GET /v1/charges": respond(http.StatusOK, chargeListBody),
		},
		Test: func(t *testing.T, ctx context.Context, gateway providers.PaymentGateway, server *gatewaytest.Server) {
			charges, err := gateway.ListCharges(ctx, "acct_X", 2)
			require.NoError(t, err)
			require.Len(t, charges, 2)
			assert.Equal(t, "ch_2", charges[0].ID)
			assert.Equal(t, "ch_1", charges[1].ID)
			calls := server.Calls(http.MethodGet, "/v1/charges")
			require.Len(t, calls, 1)
			assert.Equal(t, "acct_X", calls[0].Header.Get("Stripe-Account"))
			assert.Equal(t, "2", calls[0].Form.Get("limit"))
		},
	},
	{
		Name: "list charges clamps the page size to the provider maximum",
		Handlers: map[string]http.HandlerFunc{
			"GET /v1/charges": respond(http.StatusOK, chargeListBody),
		},
		Test: func(t *testing.T, ctx context.Context, gateway providers.PaymentGateway, server *gatewaytest.Server) {
			_, err := gateway.ListCharges(ctx, "acct_X", 500)
			require.NoError(t, err)
			calls := server.Calls(http.MethodGet, "/v1/charges")
			require.Len(t, calls, 1)
			assert.Equal(t, "100", calls[0].Form.Get("limit"))
		},
	},
}

func TestGateway(t *testing.T) {
	for _, fixture := range gatewayFixtures {
		fixture.RunTest(t)
	}
}

func TestNewValidatesConfig(t *testing.T) {
	valid := stripeprovider.Config{
		SecretKey:      "sk_test_x",
		ClientID:       "ca_x",
		AuthorizeURL:   "https://connect.stripe.com/oauth/token",
		DeauthorizeURL: "https://connect.stripe.com/oauth/deauthorize",
	}
	fixtures := []struct {
		name   string
		mutate func(*stripeprovider.Config)
	}{
		{"missing secret key", func(c *stripeprovider.Config) { c.SecretKey = "" }},
		{"missing client id", func(c *stripeprovider.Config) { c.ClientID = "" }},
		{"missing authorize url", func(c *stripeprovider.Config) { c.AuthorizeURL = "" }},
		{"missing deauthorize url", func(c *stripeprovider.Config) { c.DeauthorizeURL = "" }},
	}
	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			cfg := valid
			fixture.mutate(&cfg)
			_, err := stripeprovider.New(cfg)
			require.Error(t, err)
		})
	}
	gateway, err := stripeprovider.New(valid)
	require.NoError(t, err)
	require.NotNil(t, gateway)
}
