// Package index provides the in-memory vector index over employee records.
//
// A Snapshot pairs one immutable record set with one unit vector per
// record and answers nearest-neighbor queries by exact brute-force cosine
// similarity. Snapshots are built off to the side by a Builder and
// published through a Holder with a single atomic pointer swap, so
// concurrent queries never observe a partially rebuilt index and require
// no locking.
package index
