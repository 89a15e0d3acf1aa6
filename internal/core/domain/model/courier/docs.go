// Package courier implements the courier aggregate and its commission
// configuration value object.
//
// A courier is a delivery agent identified by UUID, carrying a commission
// configuration (fixed amount or percentage of the order total) that the
// settlement calculator reads at the instant a delivery completes, and an
// optional last known GPS position used by the order dispatcher.
package courier
