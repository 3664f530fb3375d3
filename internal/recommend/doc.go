// Package recommend maps scan statistics to cluster-size suggestions.
//
// Two independent variants exist. Workers sizes a worker cluster from total
// bytes and file count through static tier tables; Storage derives a storage
// cluster byte size from interpolated file-size percentiles. Both are pure
// functions without I/O, deterministic for a given input. One variant runs
// per invocation; they do not compose.
package recommend
