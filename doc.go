// Package bankbook provides the core types and rules for a small
// multi-account bank ledger. It is designed to be embedded by a surrounding
// application (CLI, GUI, persistence layer) through a narrow, synchronous
// interface.
//
// The core functionalities include:
//   - Exact money arithmetic: amounts and rates are decimals end to end, so
//     balances never accumulate binary floating-point drift.
//   - Transaction sequencing: each account owns an ordered collection of
//     immutable transactions, appended chronologically and totally ordered
//     by (date, sequence id).
//   - Account rules: checking and savings variants enforce overdraft
//     prevention, savings frequency limits, and monthly interest and
//     low-balance fee postings guarded against double posting.
//   - Bank dispatch: account-number allocation, a transient current
//     selection, and per-account operation routing.
//   - Data persistence: encoding and decoding of a whole bank to and from a
//     human-readable JSONL form that round-trips every field exactly.
//
// All failures are typed, recoverable error values; the package never
// prints or logs. The engine is single-writer and holds no locks: a host
// with concurrent writers must serialize access externally.
package bankbook
