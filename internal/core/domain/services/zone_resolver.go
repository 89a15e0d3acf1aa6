package services

import (
	"sort"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/zone"
)

// ResolutionOutcome classifies the result of matching a coordinate against the
// configured delivery zones.
type ResolutionOutcome int

const (
	// OutcomeUnknown represents an invalid or undefined outcome.
	OutcomeUnknown ResolutionOutcome = iota

	// OutcomeMatched means at least one active zone covers the coordinate.
	OutcomeMatched

	// OutcomeOutOfRange means active zones exist but none covers the coordinate.
	OutcomeOutOfRange

	// OutcomeNoCoverage means no active zone with a center is configured at all.
	OutcomeNoCoverage
)

// String returns the human-readable name of the outcome.
func (o ResolutionOutcome) String() string {
	switch o {
	case OutcomeMatched:
		return "Matched"
	case OutcomeOutOfRange:
		return "OutOfRange"
	case OutcomeNoCoverage:
		return "NoCoverage"
	default:
		return "Unknown"
	}
}

// ZoneMatch pairs a zone with its distance from the queried coordinate.
// DistanceKm is rounded to two decimals for presentation; coverage was decided
// against the unrounded value, so WithinRadius is authoritative even when the
// rounded distance reads equal to the radius.
type ZoneMatch struct {
	Zone         *zone.Zone
	DistanceKm   float64
	WithinRadius bool
}

// Resolution is the full result of resolving a coordinate against the zones.
//
// Primary is the covering zone the order should be booked into, nil unless the
// outcome is OutcomeMatched. Alternatives holds further covering zones, nearest
// first, capped at three. Nearest points at the closest zone when nothing
// covers the coordinate, nil otherwise. All lists every candidate zone ordered
// by distance, for diagnostics.
type Resolution struct {
	Outcome      ResolutionOutcome
	Primary      *ZoneMatch
	Alternatives []ZoneMatch
	Nearest      *ZoneMatch
	All          []ZoneMatch
}

// maxAlternatives caps how many covering zones beyond the primary are reported.
const maxAlternatives = 3

// ZoneResolver is a domain service that matches a customer coordinate against
// the configured delivery zones using great-circle distance.
//
// Business rules:
//   - Only active zones that have a center participate
//   - A zone covers the coordinate when the unrounded distance to its center
//     does not exceed its radius; a point exactly on the boundary is covered
//   - Candidates are ordered by distance ascending, ties broken by zone ID
//     string ascending so results are deterministic
type ZoneResolver struct{}

// NewZoneResolver creates a new ZoneResolver instance.
func NewZoneResolver() ZoneResolver {
	return ZoneResolver{}
}

// Resolve matches the given coordinate against the provided zones.
//
// Parameters:
//   - point: The coordinate to resolve (must be properly constructed)
//   - zones: Zones to consider; inactive and centerless zones are skipped
//
// Returns:
//   - Resolution: Outcome plus the ordered candidate list
//   - error: Validation errors for the point or any zone
func (r ZoneResolver) Resolve(point kernel.GeoPoint, zones []*zone.Zone) (Resolution, error) {
	if err := point.Validate(); err != nil {
		return Resolution{}, err
	}

	type candidate struct {
		match    ZoneMatch
		exactKm  float64
		idString string
	}

	candidates := make([]candidate, 0, len(zones))
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return Resolution{}, err
		}

		if !z.IsActive() || !z.HasCenter() {
			continue
		}

		distanceKm, err := point.DistanceKm(*z.Center())
		if err != nil {
			return Resolution{}, err
		}

		candidates = append(candidates, candidate{
			match: ZoneMatch{
				Zone:         z,
				DistanceKm:   kernel.RoundKm(distanceKm),
				WithinRadius: distanceKm <= z.RadiusKm(),
			},
			exactKm:  distanceKm,
			idString: z.ID().String(),
		})
	}

	if len(candidates) == 0 {
		return Resolution{Outcome: OutcomeNoCoverage}, nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].exactKm != candidates[j].exactKm {
			return candidates[i].exactKm < candidates[j].exactKm
		}
		return candidates[i].idString < candidates[j].idString
	})

	resolution := Resolution{
		All: make([]ZoneMatch, 0, len(candidates)),
	}
	for _, c := range candidates {
		resolution.All = append(resolution.All, c.match)

		if !c.match.WithinRadius {
			continue
		}

		if resolution.Primary == nil {
			primary := c.match
			resolution.Primary = &primary
			continue
		}

		if len(resolution.Alternatives) < maxAlternatives {
			resolution.Alternatives = append(resolution.Alternatives, c.match)
		}
	}

	if resolution.Primary != nil {
		resolution.Outcome = OutcomeMatched
		return resolution, nil
	}

	resolution.Outcome = OutcomeOutOfRange
	nearest := resolution.All[0]
	resolution.Nearest = &nearest
	return resolution, nil
}
