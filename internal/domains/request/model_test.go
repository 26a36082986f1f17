package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending can be approved", StatusPending, StatusApproved, true},
		{"pending can be denied", StatusPending, StatusDenied, true},
		{"pending cannot skip to fulfilled", StatusPending, StatusFulfilled, false},
		{"approved can be fulfilled", StatusApproved, StatusFulfilled, true},
		{"approved cannot revert to pending", StatusApproved, StatusPending, false},
		{"approved cannot be denied", StatusApproved, StatusDenied, false},
		{"denied is terminal", StatusDenied, StatusApproved, false},
		{"fulfilled is terminal", StatusFulfilled, StatusApproved, false},
		{"no self transition", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusDenied, StatusFulfilled} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("SHIPPED").IsValid())
	assert.False(t, Status("").IsValid())
}
