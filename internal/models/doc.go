// Package models defines the core domain models for splitbill.
//
// # Models
//
//   - Person: one participant's current share of the bill being edited
//   - Bill: an immutable snapshot of a completed split, stored in history
//   - LedgerState: the in-progress bill (name, total, participants)
//
// Participants are identified by name only; there are no user accounts.
//
// # Ownership
//
// A LedgerState is owned by exactly one editing session. A Bill owns its
// People slice: it is copied from the ledger at save time so later ledger
// edits never reach saved history.
package models
