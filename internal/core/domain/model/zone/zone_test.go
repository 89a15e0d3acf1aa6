package zone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/zone"
)

func mustGeoPoint(t *testing.T, lat, lon float64) *kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return &point
}

func TestNewZone(t *testing.T) {
	center := mustGeoPoint(t, 28.7041, 77.1025)

	tests := []struct {
		name           string
		zoneName       string
		center         *kernel.GeoPoint
		radiusKm       float64
		deliveryCharge float64
		wantErr        bool
	}{
		{
			name:           "valid geofenced zone",
			zoneName:       "North Delhi",
			center:         center,
			radiusKm:       5,
			deliveryCharge: 40,
			wantErr:        false,
		},
		{
			name:           "valid flat-rate zone without center",
			zoneName:       "Pickup counter",
			center:         nil,
			radiusKm:       1,
			deliveryCharge: 0,
			wantErr:        false,
		},
		{
			name:           "empty name",
			zoneName:       "",
			center:         center,
			radiusKm:       5,
			deliveryCharge: 40,
			wantErr:        true,
		},
		{
			name:           "zero radius",
			zoneName:       "North Delhi",
			center:         center,
			radiusKm:       0,
			deliveryCharge: 40,
			wantErr:        true,
		},
		{
			name:           "negative radius",
			zoneName:       "North Delhi",
			center:         center,
			radiusKm:       -2,
			deliveryCharge: 40,
			wantErr:        true,
		},
		{
			name:           "negative delivery charge",
			zoneName:       "North Delhi",
			center:         center,
			radiusKm:       5,
			deliveryCharge: -1,
			wantErr:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := zone.NewZone(kernel.NewUUID(), tt.zoneName, tt.center, tt.radiusKm, tt.deliveryCharge)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, z)
				return
			}

			require.NoError(t, err)
			require.NoError(t, z.Validate())
			assert.Equal(t, tt.zoneName, z.Name())
			assert.InDelta(t, tt.radiusKm, z.RadiusKm(), 0)
			assert.InDelta(t, tt.deliveryCharge, z.DeliveryCharge(), 0)
			assert.True(t, z.IsActive())
			assert.Equal(t, tt.center != nil, z.HasCenter())
		})
	}
}

func TestNewZone_InvalidID(t *testing.T) {
	var id kernel.UUID
	z, err := zone.NewZone(id, "North Delhi", nil, 5, 40)
	assert.Error(t, err)
	assert.Nil(t, z)
}

func TestRestoreZone(t *testing.T) {
	t.Run("restores inactive zone", func(t *testing.T) {
		id := kernel.NewUUID()
		center := mustGeoPoint(t, 28.7041, 77.1025)

		z, err := zone.RestoreZone(id, "North Delhi", center, 5, 40, false)
		require.NoError(t, err)

		assert.False(t, z.IsActive())
		assert.True(t, z.ID().IsEqual(id))
	})

	t.Run("restores active zone", func(t *testing.T) {
		z, err := zone.RestoreZone(kernel.NewUUID(), "South Delhi", nil, 8, 60, true)
		require.NoError(t, err)
		assert.True(t, z.IsActive())
	})
}

func TestZone_ActivationLifecycle(t *testing.T) {
	z, err := zone.NewZone(kernel.NewUUID(), "North Delhi", nil, 5, 40)
	require.NoError(t, err)

	assert.True(t, z.IsActive())

	z.Deactivate()
	assert.False(t, z.IsActive())

	z.Activate()
	assert.True(t, z.IsActive())
}

func TestZone_Validate(t *testing.T) {
	t.Run("nil zone", func(t *testing.T) {
		var z *zone.Zone
		assert.ErrorIs(t, z.Validate(), zone.ErrZoneIsNotConstructed)
	})

	t.Run("zero value zone", func(t *testing.T) {
		z := &zone.Zone{}
		assert.ErrorIs(t, z.Validate(), zone.ErrZoneIsNotConstructed)
	})
}

func TestZone_IsEqual(t *testing.T) {
	id := kernel.NewUUID()

	a, err := zone.NewZone(id, "North Delhi", nil, 5, 40)
	require.NoError(t, err)
	b, err := zone.NewZone(id, "Renamed", nil, 8, 60)
	require.NoError(t, err)
	c, err := zone.NewZone(kernel.NewUUID(), "North Delhi", nil, 5, 40)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
