package providers_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jt-helsinki/stripe-connect/providers"
)

func TestGatewayErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := providers.NewChargeError("charge creation failed", cause)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "charge_failed")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestGatewayErrorWithoutCause(t *testing.T) {
	err := providers.NewCardError("failed to list cards", nil)
	assert.Equal(t, "payment gateway error [card_operation_failed]: failed to list cards", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestErrorKindPredicates(t *testing.T) {
	for _, tt := range []struct {
		err   error
		check func(error) bool
	}{
		{providers.NewCardError("m", nil), providers.IsCardError},
		{providers.NewChargeError("m", nil), providers.IsChargeError},
		{providers.NewRefundError("m", nil), providers.IsRefundError},
		{providers.NewAuthorizationError("m", nil), providers.IsAuthorizationError},
	} {
		assert.True(t, tt.check(tt.err))
		// wrapping must not hide the kind
		assert.True(t, tt.check(fmt.Errorf("outer: %w", tt.err)))
	}
	assert.False(t, providers.IsChargeError(providers.NewCardError("m", nil)))
	assert.False(t, providers.IsRefundError(errors.New("plain")))
}
