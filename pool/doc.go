// Package pool provides the worker-pool capability used by the
// segmentation engines for parallel likelihood evaluation.
//
// A pool is always owned by the caller and passed explicitly into a
// segmentation call; there is no process-wide default. Three
// implementations are provided:
//
//   - FixedPool: a fixed set of long-lived workers fed by a channel.
//   - BoundedPool: demand-spawned goroutines with a concurrency cap.
//   - AntsPool: an adapter over github.com/panjf2000/ants for hosts
//     that already run an ants pool.
package pool
