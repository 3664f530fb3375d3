// Package sizewise provides filesystem scanning and size-distribution analysis.
//
// It walks a file or directory tree sequentially with an explicit stack,
// skipping symbolic links and absorbing unreadable entries into counters,
// and aggregates file counts, total bytes, the largest file and interpolated
// size percentiles. The resulting Stats feed the cluster-size recommenders
// in internal/recommend.
package sizewise
