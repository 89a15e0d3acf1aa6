package courier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/internal/core/domain/model/courier"
)

func TestNewCommissionConfig(t *testing.T) {
	tests := []struct {
		name    string
		kind    courier.CommissionKind
		rate    float64
		wantErr bool
	}{
		{
			name: "valid percent config",
			kind: courier.CommissionPercent,
			rate: 10,
		},
		{
			name: "valid fixed config",
			kind: courier.CommissionFixed,
			rate: 50,
		},
		{
			name: "zero rate is allowed",
			kind: courier.CommissionPercent,
			rate: 0,
		},
		{
			name:    "unknown kind",
			kind:    courier.CommissionUnknown,
			rate:    10,
			wantErr: true,
		},
		{
			name:    "out of range kind",
			kind:    courier.CommissionKind(99),
			rate:    10,
			wantErr: true,
		},
		{
			name:    "negative rate",
			kind:    courier.CommissionFixed,
			rate:    -1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := courier.NewCommissionConfig(tt.kind, tt.rate)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NoError(t, cfg.Validate())
			assert.Equal(t, tt.kind, cfg.Kind())
			assert.InDelta(t, tt.rate, cfg.Rate(), 0)
		})
	}
}

func TestCommissionConfig_Validate_ZeroValue(t *testing.T) {
	var cfg courier.CommissionConfig
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Equal(t, courier.ErrCommissionConfigIsNotConstructed, err)
}

func TestCommissionConfig_IsEqual(t *testing.T) {
	a, err := courier.NewCommissionConfig(courier.CommissionPercent, 10)
	require.NoError(t, err)
	b, err := courier.NewCommissionConfig(courier.CommissionPercent, 10)
	require.NoError(t, err)
	c, err := courier.NewCommissionConfig(courier.CommissionFixed, 10)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestCommissionKind_String(t *testing.T) {
	assert.Equal(t, "Fixed", courier.CommissionFixed.String())
	assert.Equal(t, "Percent", courier.CommissionPercent.String())
	assert.Equal(t, "Unknown", courier.CommissionUnknown.String())
	assert.Equal(t, "Unknown", courier.CommissionKind(42).String())
}

func TestCommissionConfig_String(t *testing.T) {
	cfg, err := courier.NewCommissionConfig(courier.CommissionPercent, 12.5)
	require.NoError(t, err)
	assert.Equal(t, "Percent(12.5)", cfg.String())
}
