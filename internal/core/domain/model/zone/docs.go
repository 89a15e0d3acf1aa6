// Package zone implements the delivery zone aggregate.
//
// A zone is a circular service area defined by a center coordinate and a
// radius in kilometers, carrying the delivery charge applied to orders
// delivered inside it. Zones are maintained by the admin back office and are
// read-only to the geolocation resolver; zones without a center exist for
// flat-rate ordering and never participate in matching.
package zone
