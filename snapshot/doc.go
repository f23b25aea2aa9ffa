// Package snapshot compares star maps by content.
//
// A Snapshot keys planets and lanes by name, so two maps built in different
// orders (or one map and its saved-and-reloaded copy) compare equal.
// Fingerprint condenses a snapshot into a short base58 digest; Diff lists
// created, updated and deleted planets and lanes.
package snapshot
