package stripe

import (
	"context"
	"errors"
	"time"

	"github.com/stripe/stripe-go/v76"

	"github.com/jt-helsinki/stripe-connect/internal/retry"
	"github.com/jt-helsinki/stripe-connect/providers"
)

// CreateChargeByToken creates a direct charge on the connected account from a
// one-time token. The call is attempted up to three times with exponential
// backoff; the idempotency key is identical across attempts so retries collapse
// to one financial effect at the provider.
func (s *StripeGateway) CreateChargeByToken(ctx context.Context, accountID string, token string, params *providers.ChargeParams) (*providers.Charge, error) {
	ctx = s.tagContext(ctx, "create_charge_by_token", accountID)
	if err := validateChargeParams(params); err != nil {
		return nil, err
	}
	return s.createCharge(ctx, accountID, token, params)
}

// CreateChargeByCard exchanges a stored card for a one-time token scoped to the
// connected account, then charges it exactly as CreateChargeByToken would.
func (s *StripeGateway) CreateChargeByCard(ctx context.Context, accountID string, customerID string, cardID string, params *providers.ChargeParams) (*providers.Charge, error) {
	ctx = s.tagContext(ctx, "create_charge_by_card", accountID)
	if err := validateChargeParams(params); err != nil {
		return nil, err
	}
	tokenParams := &stripe.TokenParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
	}
	// TokenParams has no field for sharing an existing card with a connected
	// account; the card id goes out as a raw form value.
	tokenParams.AddExtra("card", cardID)
	tokenParams.SetStripeAccount(accountID)
	tok, err := s.client.Tokens.New(tokenParams)
	s.count("create_token", err)
	if err != nil {
		return nil, providers.NewChargeError("failed to tokenize stored card for connected account", err)
	}
	return s.createCharge(ctx, accountID, tok.ID, params)
}

// CreateRefund refunds a charge owned by the connected account, with the same
// bounded retry as charge creation. If the provider rejects the call as an
// invalid request the charge is assumed to have been settled out-of-band (eg.
// refunded directly in the Stripe dashboard) and a sentinel refund with id
// DashboardRefundID is returned instead of an error. This also swallows other
// invalid-request causes such as a bad charge id; callers must check the id.
func (s *StripeGateway) CreateRefund(ctx context.Context, accountID string, params *providers.RefundParams) (*providers.Refund, error) {
	ctx = s.tagContext(ctx, "create_refund", accountID)
	defer s.observe("create_refund", time.Now())
	if params == nil || params.ChargeID == "" {
		return nil, providers.NewRefundError("charge id is required", nil)
	}
	reason := params.Reason
	if reason == "" {
		reason = providers.RefundReasonRequestedByCustomer
	}
	refundApplicationFee := true
	if params.RefundApplicationFee != nil {
		refundApplicationFee = *params.RefundApplicationFee
	}
	refundParams := &stripe.RefundParams{
		Params:               stripe.Params{Context: ctx},
		Charge:               stripe.String(params.ChargeID),
		Reason:               stripe.String(string(reason)),
		RefundApplicationFee: stripe.Bool(refundApplicationFee),
	}
	if params.Amount != nil {
		refundParams.Amount = stripe.Int64(*params.Amount)
	}
	refundParams.SetStripeAccount(accountID)

	var refund *providers.Refund
	err := s.retryPolicy(ctx, "create_refund").Do(ctx, func() error {
		r, err := s.client.Refunds.New(refundParams)
		s.count("create_refund", err)
		if err != nil {
			var stripeErr *stripe.Error
			if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeInvalidRequest {
				refund = dashboardRefund(params, reason, stripeErr)
				s.logger.Warn(ctx, "charge already settled outside the api, returning dashboard marker", map[string]any{
					"charge": params.ChargeID,
					"error":  stripeErr.Msg,
				})
				return nil
			}
			return err
		}
		refund = mapRefund(r)
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "refund creation failed", map[string]any{
			"charge": params.ChargeID,
			"error":  err.Error(),
		})
		return nil, providers.NewRefundError("refund creation failed", err)
	}
	return refund, nil
}

func (s *StripeGateway) createCharge(ctx context.Context, accountID string, source string, params *providers.ChargeParams) (*providers.Charge, error) {
	defer s.observe("create_charge", time.Now())
	chargeParams := &stripe.ChargeParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(params.Amount),
		Currency: stripe.String(params.Currency),
	}
	if params.Description != "" {
		chargeParams.Description = stripe.String(params.Description)
	}
	if params.ApplicationFee > 0 {
		chargeParams.ApplicationFeeAmount = stripe.Int64(params.ApplicationFee)
	}
	if params.CustomerID != "" {
		chargeParams.Customer = stripe.String(params.CustomerID)
	}
	for k, v := range params.Metadata {
		chargeParams.AddMetadata(k, v)
	}
	if err := chargeParams.SetSource(source); err != nil {
		return nil, providers.NewChargeError("invalid charge source", err)
	}
	chargeParams.SetStripeAccount(accountID)
	// same key on every attempt
	chargeParams.SetIdempotencyKey(params.IdempotencyKey)

	var charge *stripe.Charge
	err := s.retryPolicy(ctx, "create_charge").Do(ctx, func() error {
		var err error
		charge, err = s.client.Charges.New(chargeParams)
		s.count("create_charge", err)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "charge creation failed", map[string]any{
			"error": err.Error(),
		})
		return nil, providers.NewChargeError("charge creation failed", err)
	}
	return mapCharge(charge), nil
}

// retryPolicy returns the gateway retry policy with retries logged against ctx
func (s *StripeGateway) retryPolicy(ctx context.Context, operation string) retry.Policy {
	policy := s.retry
	policy.OnRetry = func(attempt int, delay time.Duration, err error) {
		s.logger.Warn(ctx, "stripe call failed, backing off", map[string]any{
			"attempt": attempt,
			"backoff": delay.String(),
			"error":   err.Error(),
		})
	}
	return policy
}

func validateChargeParams(params *providers.ChargeParams) error {
	if params == nil {
		return providers.NewChargeError("charge parameters are required", nil)
	}
	if params.Amount <= 0 {
		return providers.NewChargeError("charge amount must be positive", nil)
	}
	if params.Currency == "" {
		return providers.NewChargeError("currency is required", nil)
	}
	if params.IdempotencyKey == "" {
		return providers.NewChargeError("idempotency key is required", nil)
	}
	return nil
}

func dashboardRefund(params *providers.RefundParams, reason providers.RefundReason, stripeErr *stripe.Error) *providers.Refund {
	var amount int64
	if params.Amount != nil {
		amount = *params.Amount
	}
	return &providers.Refund{
		ID:                 providers.DashboardRefundID,
		Amount:             amount,
		ChargeID:           params.ChargeID,
		Reason:             reason,
		BalanceTransaction: stripeErr.Msg,
	}
}

func mapRefund(r *stripe.Refund) *providers.Refund {
	refund := &providers.Refund{
		ID:        r.ID,
		Amount:    r.Amount,
		Currency:  string(r.Currency),
		Status:    string(r.Status),
		Reason:    providers.RefundReason(r.Reason),
		CreatedAt: time.Unix(r.Created, 0),
	}
	if r.Charge != nil {
		refund.ChargeID = r.Charge.ID
	}
	if r.BalanceTransaction != nil {
		refund.BalanceTransaction = r.BalanceTransaction.ID
	}
	return refund
}
