package courier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/internal/core/domain/model/courier"
	"bistro/internal/core/domain/model/kernel"
)

func validCommissionConfig(t *testing.T) courier.CommissionConfig {
	t.Helper()
	cfg, err := courier.NewCommissionConfig(courier.CommissionPercent, 10)
	require.NoError(t, err)
	return cfg
}

func TestNewCourier(t *testing.T) {
	cfg := validCommissionConfig(t)

	tests := []struct {
		name        string
		courierName string
		phone       string
		commission  courier.CommissionConfig
		wantErr     bool
	}{
		{
			name:        "valid courier",
			courierName: "Ravi Kumar",
			phone:       "+91-9800000000",
			commission:  cfg,
		},
		{
			name:        "empty phone is allowed",
			courierName: "Ravi Kumar",
			phone:       "",
			commission:  cfg,
		},
		{
			name:        "empty name",
			courierName: "",
			phone:       "+91-9800000000",
			commission:  cfg,
			wantErr:     true,
		},
		{
			name:        "unconstructed commission config",
			courierName: "Ravi Kumar",
			phone:       "+91-9800000000",
			commission:  courier.CommissionConfig{},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := courier.NewCourier(kernel.NewUUID(), tt.courierName, tt.phone, tt.commission)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NoError(t, c.Validate())
			assert.Equal(t, tt.courierName, c.Name())
			assert.Equal(t, tt.phone, c.Phone())
			assert.True(t, c.CommissionConfig().IsEqual(tt.commission))
			assert.Nil(t, c.LastKnownLocation())
		})
	}
}

func TestRestoreCourier(t *testing.T) {
	cfg := validCommissionConfig(t)

	t.Run("with location", func(t *testing.T) {
		location, err := kernel.NewGeoPoint(28.6139, 77.2090)
		require.NoError(t, err)

		c, err := courier.RestoreCourier(kernel.NewUUID(), "Ravi Kumar", "", cfg, &location)
		require.NoError(t, err)

		require.NotNil(t, c.LastKnownLocation())
		equal, err := c.LastKnownLocation().IsEqual(location)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("without location", func(t *testing.T) {
		c, err := courier.RestoreCourier(kernel.NewUUID(), "Ravi Kumar", "", cfg, nil)
		require.NoError(t, err)
		assert.Nil(t, c.LastKnownLocation())
	})

	t.Run("unconstructed location fails", func(t *testing.T) {
		var location kernel.GeoPoint
		c, err := courier.RestoreCourier(kernel.NewUUID(), "Ravi Kumar", "", cfg, &location)
		assert.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestCourier_Validate(t *testing.T) {
	t.Run("nil courier", func(t *testing.T) {
		var c *courier.Courier
		assert.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
	})

	t.Run("zero value courier", func(t *testing.T) {
		c := &courier.Courier{}
		assert.ErrorIs(t, c.Validate(), courier.ErrCourierIsNotConstructed)
	})
}

func TestCourier_SetCommissionConfig(t *testing.T) {
	c, err := courier.NewCourier(kernel.NewUUID(), "Ravi Kumar", "", validCommissionConfig(t))
	require.NoError(t, err)

	t.Run("replaces config", func(t *testing.T) {
		fixed, err := courier.NewCommissionConfig(courier.CommissionFixed, 50)
		require.NoError(t, err)

		require.NoError(t, c.SetCommissionConfig(fixed))
		assert.True(t, c.CommissionConfig().IsEqual(fixed))
	})

	t.Run("rejects unconstructed config", func(t *testing.T) {
		before := c.CommissionConfig()
		err := c.SetCommissionConfig(courier.CommissionConfig{})
		assert.Error(t, err)
		assert.True(t, c.CommissionConfig().IsEqual(before))
	})
}

func TestCourier_UpdateLocation(t *testing.T) {
	c, err := courier.NewCourier(kernel.NewUUID(), "Ravi Kumar", "", validCommissionConfig(t))
	require.NoError(t, err)

	t.Run("records ping", func(t *testing.T) {
		location, err := kernel.NewGeoPoint(28.6139, 77.2090)
		require.NoError(t, err)

		require.NoError(t, c.UpdateLocation(location))
		require.NotNil(t, c.LastKnownLocation())

		equal, err := c.LastKnownLocation().IsEqual(location)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("rejects unconstructed point", func(t *testing.T) {
		var location kernel.GeoPoint
		assert.Error(t, c.UpdateLocation(location))
	})
}

func TestCourier_IsEqual(t *testing.T) {
	cfg := validCommissionConfig(t)
	id := kernel.NewUUID()

	a, err := courier.NewCourier(id, "Ravi Kumar", "", cfg)
	require.NoError(t, err)
	b, err := courier.NewCourier(id, "Different Name", "", cfg)
	require.NoError(t, err)
	c, err := courier.NewCourier(kernel.NewUUID(), "Ravi Kumar", "", cfg)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
