// Package bench measures proof size and prove/verify latency across a range
// of soundness targets, the data cmd/zkbench charts.
//
// Grounded on the teacher's cmd/bench benchmark-runner/reporter split:
// Runner produces Results, a separate Reporter renders them.
package bench
