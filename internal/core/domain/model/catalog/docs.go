// Package catalog holds the shared reference data: menu items and stores.
// Both are created once and mutated only by managers; items carry the price
// snapshotted into each order line at placement time.
package catalog
