package payout_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/payout"
)

func TestNewPayout(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		notes   string
		wantErr bool
	}{
		{name: "valid payout", amount: 500, notes: "weekly settlement"},
		{name: "empty notes allowed", amount: 0.01},
		{name: "zero amount rejected", amount: 0, wantErr: true},
		{name: "negative amount rejected", amount: -100, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courierID := kernel.NewUUID()
			p, err := payout.NewPayout(kernel.NewUUID(), courierID, tt.amount, tt.notes)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, p)
				return
			}

			require.NoError(t, err)
			require.NoError(t, p.Validate())
			assert.True(t, p.CourierID().IsEqual(courierID))
			assert.InDelta(t, tt.amount, p.Amount(), 0)
			assert.Equal(t, tt.notes, p.Notes())
			assert.WithinDuration(t, time.Now().UTC(), p.RecordedAt(), time.Minute)
		})
	}
}

func TestNewPayout_InvalidIDs(t *testing.T) {
	var zero kernel.UUID

	t.Run("invalid payout id", func(t *testing.T) {
		p, err := payout.NewPayout(zero, kernel.NewUUID(), 100, "")
		assert.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("invalid courier id", func(t *testing.T) {
		p, err := payout.NewPayout(kernel.NewUUID(), zero, 100, "")
		assert.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestRestorePayout(t *testing.T) {
	recordedAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	p, err := payout.RestorePayout(kernel.NewUUID(), kernel.NewUUID(), 250, "advance", recordedAt)
	require.NoError(t, err)

	assert.Equal(t, recordedAt, p.RecordedAt())
	assert.Equal(t, "advance", p.Notes())
}

func TestPayout_Validate(t *testing.T) {
	t.Run("nil payout", func(t *testing.T) {
		var p *payout.Payout
		assert.ErrorIs(t, p.Validate(), payout.ErrPayoutIsNotConstructed)
	})

	t.Run("zero value payout", func(t *testing.T) {
		p := &payout.Payout{}
		assert.ErrorIs(t, p.Validate(), payout.ErrPayoutIsNotConstructed)
	})
}
