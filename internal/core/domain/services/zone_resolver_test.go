package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/zone"
	"bistro/internal/core/domain/services"
)

func mustGeoPoint(t *testing.T, latitude, longitude float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(latitude, longitude)
	require.NoError(t, err)
	return point
}

func mustZone(t *testing.T, name string, center *kernel.GeoPoint, radiusKm float64) *zone.Zone {
	t.Helper()
	z, err := zone.NewZone(kernel.NewUUID(), name, center, radiusKm, 40)
	require.NoError(t, err)
	return z
}

func TestZoneResolver_Resolve_NoCoverage(t *testing.T) {
	resolver := services.NewZoneResolver()
	point := mustGeoPoint(t, 28.6139, 77.2090)
	center := mustGeoPoint(t, 28.6139, 77.2090)

	inactive := mustZone(t, "Inactive", &center, 5)
	inactive.Deactivate()

	tests := []struct {
		name  string
		zones []*zone.Zone
	}{
		{name: "no zones at all", zones: nil},
		{name: "only inactive zones", zones: []*zone.Zone{inactive}},
		{name: "only centerless zones", zones: []*zone.Zone{mustZone(t, "Flat rate", nil, 5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolution, err := resolver.Resolve(point, tt.zones)
			require.NoError(t, err)

			assert.Equal(t, services.OutcomeNoCoverage, resolution.Outcome)
			assert.Nil(t, resolution.Primary)
			assert.Nil(t, resolution.Nearest)
			assert.Empty(t, resolution.All)
		})
	}
}

func TestZoneResolver_Resolve_Matched(t *testing.T) {
	resolver := services.NewZoneResolver()
	point := mustGeoPoint(t, 28.6139, 77.2090)

	nearCenter := mustGeoPoint(t, 28.6239, 77.2090)
	farCenter := mustGeoPoint(t, 28.7041, 77.1025)
	near := mustZone(t, "Near", &nearCenter, 5)
	far := mustZone(t, "Far", &farCenter, 20)

	resolution, err := resolver.Resolve(point, []*zone.Zone{far, near})
	require.NoError(t, err)

	assert.Equal(t, services.OutcomeMatched, resolution.Outcome)
	require.NotNil(t, resolution.Primary)
	assert.True(t, near.IsEqual(resolution.Primary.Zone))
	assert.True(t, resolution.Primary.WithinRadius)
	assert.Nil(t, resolution.Nearest)

	require.Len(t, resolution.Alternatives, 1)
	assert.True(t, far.IsEqual(resolution.Alternatives[0].Zone))

	require.Len(t, resolution.All, 2)
	assert.LessOrEqual(t, resolution.All[0].DistanceKm, resolution.All[1].DistanceKm)
}

func TestZoneResolver_Resolve_AlternativesCappedAtThree(t *testing.T) {
	resolver := services.NewZoneResolver()
	point := mustGeoPoint(t, 28.6139, 77.2090)

	zones := make([]*zone.Zone, 0, 5)
	for i := 0; i < 5; i++ {
		center := mustGeoPoint(t, 28.6139+float64(i)*0.01, 77.2090)
		zones = append(zones, mustZone(t, "Zone", &center, 50))
	}

	resolution, err := resolver.Resolve(point, zones)
	require.NoError(t, err)

	assert.Equal(t, services.OutcomeMatched, resolution.Outcome)
	require.NotNil(t, resolution.Primary)
	assert.Len(t, resolution.Alternatives, 3)
	assert.Len(t, resolution.All, 5)
}

func TestZoneResolver_Resolve_OutOfRange(t *testing.T) {
	resolver := services.NewZoneResolver()
	point := mustGeoPoint(t, 28.6139, 77.2090)

	nearCenter := mustGeoPoint(t, 28.7041, 77.1025)
	farCenter := mustGeoPoint(t, 28.9845, 77.7064)
	near := mustZone(t, "Near miss", &nearCenter, 1)
	far := mustZone(t, "Far miss", &farCenter, 1)

	resolution, err := resolver.Resolve(point, []*zone.Zone{far, near})
	require.NoError(t, err)

	assert.Equal(t, services.OutcomeOutOfRange, resolution.Outcome)
	assert.Nil(t, resolution.Primary)
	assert.Empty(t, resolution.Alternatives)

	require.NotNil(t, resolution.Nearest)
	assert.True(t, near.IsEqual(resolution.Nearest.Zone))
	assert.False(t, resolution.Nearest.WithinRadius)
}

func TestZoneResolver_Resolve_BoundaryIsCovered(t *testing.T) {
	resolver := services.NewZoneResolver()
	point := mustGeoPoint(t, 28.6139, 77.2090)
	center := mustGeoPoint(t, 28.7041, 77.1025)

	distanceKm, err := point.DistanceKm(center)
	require.NoError(t, err)

	boundary := mustZone(t, "Boundary", &center, distanceKm)

	resolution, err := resolver.Resolve(point, []*zone.Zone{boundary})
	require.NoError(t, err)

	assert.Equal(t, services.OutcomeMatched, resolution.Outcome)
	require.NotNil(t, resolution.Primary)
	assert.True(t, resolution.Primary.WithinRadius)
}

func TestZoneResolver_Resolve_TieBrokenByZoneID(t *testing.T) {
	resolver := services.NewZoneResolver()
	point := mustGeoPoint(t, 28.6139, 77.2090)
	center := mustGeoPoint(t, 28.6239, 77.2090)

	first := mustZone(t, "Twin A", &center, 5)
	second := mustZone(t, "Twin B", &center, 5)

	expected := first
	if second.ID().String() < first.ID().String() {
		expected = second
	}

	resolution, err := resolver.Resolve(point, []*zone.Zone{first, second})
	require.NoError(t, err)

	require.NotNil(t, resolution.Primary)
	assert.True(t, expected.IsEqual(resolution.Primary.Zone))
}

func TestZoneResolver_Resolve_SkipsInactiveAndCenterless(t *testing.T) {
	resolver := services.NewZoneResolver()
	point := mustGeoPoint(t, 28.6139, 77.2090)
	center := mustGeoPoint(t, 28.6239, 77.2090)

	inactive := mustZone(t, "Inactive", &center, 50)
	inactive.Deactivate()
	flatRate := mustZone(t, "Flat rate", nil, 50)
	active := mustZone(t, "Active", &center, 50)

	resolution, err := resolver.Resolve(point, []*zone.Zone{inactive, flatRate, active})
	require.NoError(t, err)

	assert.Equal(t, services.OutcomeMatched, resolution.Outcome)
	require.NotNil(t, resolution.Primary)
	assert.True(t, active.IsEqual(resolution.Primary.Zone))
	assert.Len(t, resolution.All, 1)
}

func TestZoneResolver_Resolve_InvalidPoint(t *testing.T) {
	resolver := services.NewZoneResolver()

	_, err := resolver.Resolve(kernel.GeoPoint{}, nil)
	assert.Error(t, err)
}

func TestResolutionOutcome_String(t *testing.T) {
	assert.Equal(t, "Matched", services.OutcomeMatched.String())
	assert.Equal(t, "OutOfRange", services.OutcomeOutOfRange.String())
	assert.Equal(t, "NoCoverage", services.OutcomeNoCoverage.String())
	assert.Equal(t, "Unknown", services.OutcomeUnknown.String())
}
