package providers

import (
	"errors"
	"fmt"
)

// Error codes, one per failure domain
const (
	ErrCodeCard          = "card_operation_failed"
	ErrCodeCharge        = "charge_failed"
	ErrCodeRefund        = "refund_failed"
	ErrCodeAuthorization = "authorization_failed"
)

// GatewayError wraps a provider or transport failure with the failure domain it
// occurred in. The originating error is carried verbatim and reachable via Unwrap.
type GatewayError struct {
	Code    string
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment gateway error [%s]: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("payment gateway error [%s]: %s", e.Code, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// NewCardError wraps a failure of a customer/card/token operation or charge listing
func NewCardError(message string, err error) *GatewayError {
	return &GatewayError{Code: ErrCodeCard, Message: message, Err: err}
}

// NewChargeError wraps the final failure of a charge creation attempt
func NewChargeError(message string, err error) *GatewayError {
	return &GatewayError{Code: ErrCodeCharge, Message: message, Err: err}
}

// NewRefundError wraps the final failure of a refund creation attempt
func NewRefundError(message string, err error) *GatewayError {
	return &GatewayError{Code: ErrCodeRefund, Message: message, Err: err}
}

// NewAuthorizationError wraps a failure of the connect/disconnect OAuth exchange
func NewAuthorizationError(message string, err error) *GatewayError {
	return &GatewayError{Code: ErrCodeAuthorization, Message: message, Err: err}
}

func hasCode(err error, code string) bool {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Code == code
	}
	return false
}

// IsCardError reports whether err is a card-domain failure
func IsCardError(err error) bool { return hasCode(err, ErrCodeCard) }

// IsChargeError reports whether err is a charge-domain failure
func IsChargeError(err error) bool { return hasCode(err, ErrCodeCharge) }

// IsRefundError reports whether err is a refund-domain failure
func IsRefundError(err error) bool { return hasCode(err, ErrCodeRefund) }

// IsAuthorizationError reports whether err is an authorization-domain failure
func IsAuthorizationError(err error) bool { return hasCode(err, ErrCodeAuthorization) }
