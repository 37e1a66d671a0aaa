//go:generate mockgen -destination=./mocks/payment_gateway.go -package=mocks . PaymentGateway

package providers

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GrantType selects the OAuth grant used when connecting a standalone account
type GrantType string

const (
	// GrantTypeAuthorizationCode exchanges a one-time authorization code
	GrantTypeAuthorizationCode GrantType = "authorization_code"
	// GrantTypeRefreshToken exchanges a previously issued refresh token
	GrantTypeRefreshToken GrantType = "refresh_token"
)

// RefundReason is the reason reported to the payment provider for a refund
type RefundReason string

const (
	RefundReasonDuplicate           RefundReason = "duplicate"
	RefundReasonFraudulent          RefundReason = "fraudulent"
	RefundReasonRequestedByCustomer RefundReason = "requested_by_customer"
)

// DashboardRefundID is the sentinel refund id returned when the provider reports
// the charge was already settled out-of-band (eg. refunded via the Stripe dashboard)
const DashboardRefundID = "STRIPE_DASHBOARD"

// ChargeParams is a struct for creating a direct charge against a connected account.
// Currency and IdempotencyKey are required; the same idempotency key is reused
// across every retry of a single logical charge.
type ChargeParams struct {
	CustomerID     string            `json:"customer_id"`
	Amount         int64             `json:"amount"`
	ApplicationFee int64             `json:"application_fee"`
	Currency       string            `json:"currency"`
	Description    string            `json:"description"`
	IdempotencyKey string            `json:"idempotency_key"`
	Metadata       map[string]string `json:"metadata"`
}

// RefundParams is a struct for refunding a charge on a connected account
type RefundParams struct {
	ChargeID string `json:"charge_id"`
	// Reason defaults to requested_by_customer
	Reason RefundReason `json:"reason"`
	// RefundApplicationFee defaults to true
	RefundApplicationFee *bool `json:"refund_application_fee"`
	// Amount in minor units; nil refunds the full charge
	Amount *int64 `json:"amount"`
}

// ConnectParams is a struct for the OAuth token exchange of a standalone account
type ConnectParams struct {
	// GrantType defaults to authorization_code
	GrantType    GrantType `json:"grant_type"`
	Code         string    `json:"code"`
	RefreshToken string    `json:"refresh_token"`
}

// Customer is a struct for a platform customer
type Customer struct {
	ID            string            `json:"id"`
	Email         string            `json:"email"`
	Description   string            `json:"description"`
	DefaultCardID string            `json:"default_card_id"`
	Metadata      map[string]string `json:"metadata"`
	CreatedAt     time.Time         `json:"created_at"`
}

// Card is a struct for a customer's stored card
type Card struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	ExpM  int64  `json:"exp_month"`
	ExpY  int64  `json:"exp_year"`
	Last4 string `json:"last4"`
}

// Token is a struct for a one-time card token
type Token struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Used      bool      `json:"used"`
	Livemode  bool      `json:"livemode"`
	Card      *Card     `json:"card"`
	CreatedAt time.Time `json:"created_at"`
}

// Charge is a struct for a charge on a connected account
type Charge struct {
	ID          string            `json:"id"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	Paid        bool              `json:"paid"`
	Refunded    bool              `json:"refunded"`
	CustomerID  string            `json:"customer_id"`
	Metadata    map[string]string `json:"metadata"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Refund is a struct for a refund of a charge on a connected account.
// A refund with ID == DashboardRefundID was not created by this call; it marks a
// charge the provider reported as already settled, with the provider's message in
// BalanceTransaction.
type Refund struct {
	ID                 string       `json:"id"`
	Amount             int64        `json:"amount"`
	Currency           string       `json:"currency"`
	ChargeID           string       `json:"charge_id"`
	Status             string       `json:"status"`
	Reason             RefundReason `json:"reason"`
	BalanceTransaction string       `json:"balance_transaction"`
	CreatedAt          time.Time    `json:"created_at"`
}

// OAuthToken is the verbatim response of the provider's authorize endpoint
type OAuthToken struct {
	AccessToken          string `json:"access_token"`
	RefreshToken         string `json:"refresh_token"`
	TokenType            string `json:"token_type"`
	StripePublishableKey string `json:"stripe_publishable_key"`
	StripeUserID         string `json:"stripe_user_id"`
	Scope                string `json:"scope"`
	Livemode             bool   `json:"livemode"`
}

// Deauthorization is the verbatim response of the provider's deauthorize endpoint
type Deauthorization struct {
	StripeUserID string `json:"stripe_user_id"`
}

// NewIdempotencyKey returns a fresh idempotency key for a logical charge attempt.
// Callers must reuse the same key when resubmitting the same logical charge.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

// PaymentGateway is an interface for a payment provider supporting direct charges
// against connected accounts
type PaymentGateway interface {
	// CreateCustomer creates a platform customer with the given email and card token
	CreateCustomer(ctx context.Context, email string, cardToken string) (*Customer, error)
	// GetCustomer gets a platform customer
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	// DeleteCustomer deletes a platform customer
	DeleteCustomer(ctx context.Context, id string) error
	// RetrieveToken retrieves a previously created one-time token
	RetrieveToken(ctx context.Context, tokenID string) (*Token, error)
	// CreateCard stores a tokenized card against a customer
	CreateCard(ctx context.Context, customerID string, cardToken string) (*Card, error)
	// DeleteCard removes a stored card from a customer
	DeleteCard(ctx context.Context, customerID string, cardID string) error
	// ListCards lists a customer's stored cards in provider order
	ListCards(ctx context.Context, customerID string) ([]*Card, error)
	// ListCharges lists charges owned by the connected account, newest first.
	// A limit of 0 leaves the page size to the provider; otherwise 1-100.
	ListCharges(ctx context.Context, accountID string, limit int64) ([]*Charge, error)
	// CreateChargeByToken creates a direct charge on the connected account from a
	// one-time token
	CreateChargeByToken(ctx context.Context, accountID string, token string, params *ChargeParams) (*Charge, error)
	// CreateChargeByCard exchanges a stored card for a one-time token scoped to the
	// connected account, then charges it
	CreateChargeByCard(ctx context.Context, accountID string, customerID string, cardID string, params *ChargeParams) (*Charge, error)
	// CreateRefund refunds a charge owned by the connected account
	CreateRefund(ctx context.Context, accountID string, params *RefundParams) (*Refund, error)
	// Connect performs the OAuth token exchange for a standalone account
	Connect(ctx context.Context, params *ConnectParams) (*OAuthToken, error)
	// Disconnect revokes the platform's access to a connected account
	Disconnect(ctx context.Context, accountID string) (*Deauthorization, error)
}
