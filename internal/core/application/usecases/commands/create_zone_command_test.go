package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/internal/core/application/usecases/commands"
	"bistro/internal/core/domain/model/kernel"
)

func mustGeoPoint(t *testing.T, latitude, longitude float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(latitude, longitude)
	require.NoError(t, err)
	return point
}

func TestNewCreateZoneCommand(t *testing.T) {
	center := mustGeoPoint(t, 28.6139, 77.2090)

	tests := []struct {
		name           string
		zoneName       string
		center         *kernel.GeoPoint
		radiusKm       float64
		deliveryCharge float64
		wantErr        error
	}{
		{name: "valid zone with center", zoneName: "Central Delhi", center: &center, radiusKm: 5, deliveryCharge: 40},
		{name: "valid flat-rate zone", zoneName: "Pickup only", radiusKm: 1},
		{name: "empty name", zoneName: "", radiusKm: 5, wantErr: commands.ErrZoneNameIsRequired},
		{name: "zero radius", zoneName: "Central Delhi", radiusKm: 0, wantErr: commands.ErrRadiusIsInvalid},
		{name: "negative radius", zoneName: "Central Delhi", radiusKm: -2, wantErr: commands.ErrRadiusIsInvalid},
		{name: "negative charge", zoneName: "Central Delhi", radiusKm: 5, deliveryCharge: -1, wantErr: commands.ErrChargeIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewCreateZoneCommand(
				kernel.NewUUID(), tt.zoneName, tt.center, tt.radiusKm, tt.deliveryCharge)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
			assert.Equal(t, tt.zoneName, cmd.Name())
			assert.InDelta(t, tt.radiusKm, cmd.RadiusKm(), 0)
		})
	}
}

func TestCreateZoneCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateZoneCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateZoneCommandIsNotConstructed)
}
