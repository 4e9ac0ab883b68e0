package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectOutcome(t *testing.T) {
	tests := []struct {
		both, damage, notes bool
		want                Outcome
	}{
		{false, false, false, OutcomeWait},
		{false, true, false, OutcomeWait},
		{false, false, true, OutcomeWait},
		{true, false, false, OutcomeComplete},
		{true, true, false, OutcomeDispute},
		{true, false, true, OutcomeDispute},
		{true, true, true, OutcomeDispute},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectOutcome(tt.both, tt.damage, tt.notes),
			"both=%v damage=%v notes=%v", tt.both, tt.damage, tt.notes)
	}
}
