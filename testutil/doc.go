// Package testutil provides seeded random generators for synthetic
// segmentation test data, so tests and benchmarks stay reproducible.
package testutil
