// Package pool provides two forms of resource reuse for the zkboo protocol:
// a bounded worker pool that fans independent repetitions out across
// goroutines, and a sync.Pool-backed buffer pool that reduces allocation
// churn from the byte buffers commitment.Commit encodes each view into.
//
// Repetitions are independent MPC instances (spec: each owns its three
// Parties and three Keys exclusively), so the worker pool never needs to
// coordinate state between tasks beyond collecting their results; it is the
// concurrency analogue of the teacher's ProofManager.maxConcurrency, and the
// buffer pool is the direct generalization of the teacher's ObjectPool,
// pooling byte buffers instead of big.Int and curve points.
package pool
