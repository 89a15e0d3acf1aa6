// Package payout implements the append-only courier payout ledger entry.
package payout
