package courier

import (
	"fmt"

	"bistro/internal/pkg/errs"
	"bistro/internal/pkg/guard"
)

// ErrCommissionConfigIsNotConstructed is returned when using an improperly
// initialized CommissionConfig. Configs must be created via NewCommissionConfig.
var ErrCommissionConfigIsNotConstructed = errs.NewValueIsRequiredError(
	"commission config must be created via NewCommissionConfig constructor")

// CommissionKind discriminates how a courier's commission is computed.
type CommissionKind int

const (
	// CommissionUnknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized CommissionKind values.
	CommissionUnknown CommissionKind = iota

	// CommissionFixed pays a flat currency amount per completed delivery,
	// regardless of the order total.
	CommissionFixed

	// CommissionPercent pays a percentage of the order total per completed delivery.
	CommissionPercent
)

// getKindStrings returns a map of CommissionKind values to their string representations.
func getKindStrings() map[CommissionKind]string {
	return map[CommissionKind]string{
		CommissionUnknown: "Unknown",
		CommissionFixed:   "Fixed",
		CommissionPercent: "Percent",
	}
}

// Validate checks if the CommissionKind value is valid.
// Valid kinds are CommissionFixed and CommissionPercent.
func (k CommissionKind) Validate() error {
	if k != CommissionFixed && k != CommissionPercent {
		return errs.NewValueIsInvalidErrorWithCause("commission kind is invalid",
			fmt.Errorf("%d is not a valid commission kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
// This method implements the fmt.Stringer interface and is safe
// to call on any CommissionKind value, including invalid ones.
func (k CommissionKind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// CommissionConfig is an immutable value object describing how a courier is
// paid per delivery: a fixed currency amount or a percentage of the order
// total. The rate is a currency amount for CommissionFixed and percentage
// points for CommissionPercent; it is non-negative in both cases.
//
// The config attached to a courier is read exactly once, at the instant an
// order transitions into the delivered state, and the computed commission is
// frozen onto that order. Editing the config later never changes historical
// commissions.
type CommissionConfig struct { //nolint:recvcheck //using for validation
	kind  CommissionKind
	rate  float64
	guard guard.ConstructorGuard
}

// NewCommissionConfig creates a CommissionConfig with the specified kind and rate.
// The kind must be CommissionFixed or CommissionPercent, and the rate must be
// non-negative. Returns an error if either validation fails.
//
// Example:
//
//	cfg, err := courier.NewCommissionConfig(courier.CommissionPercent, 10)
//	if err != nil {
//	    // Handle validation error
//	}
func NewCommissionConfig(kind CommissionKind, rate float64) (CommissionConfig, error) {
	cfg := CommissionConfig{
		guard: guard.NewConstructorGuard(),
	}

	if err := cfg.setKind(kind); err != nil {
		return CommissionConfig{}, err
	}
	if err := cfg.setRate(rate); err != nil {
		return CommissionConfig{}, err
	}

	return cfg, nil
}

// Validate checks if the CommissionConfig was properly constructed.
// The zero value is invalid and fails this validation.
func (c CommissionConfig) Validate() error {
	return c.guard.Validate(ErrCommissionConfigIsNotConstructed)
}

// Kind returns the commission kind.
func (c CommissionConfig) Kind() CommissionKind {
	return c.kind
}

// Rate returns the commission rate: a currency amount for CommissionFixed,
// percentage points for CommissionPercent.
func (c CommissionConfig) Rate() float64 {
	return c.rate
}

// IsEqual compares two configs for kind and rate equality.
func (c CommissionConfig) IsEqual(other CommissionConfig) bool {
	return c.kind == other.kind && c.rate == other.rate
}

// String returns a human-readable representation such as "Percent(10)".
func (c CommissionConfig) String() string {
	return fmt.Sprintf("%s(%g)", c.kind, c.rate)
}

func (c *CommissionConfig) setKind(kind CommissionKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *CommissionConfig) setRate(rate float64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("rate",
			fmt.Errorf("%g is negative", rate))
	}
	c.rate = rate
	return nil
}
