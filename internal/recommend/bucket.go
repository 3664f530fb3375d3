package recommend

import (
	"fmt"
	"math"
)

const kib = 1 << 10

// HeterogeneityRatio is the p75/p25 ratio at or above which a file-size
// distribution counts as heterogeneous.
const HeterogeneityRatio = 4.0

// bucket pairs a recommendable storage cluster size with its display label.
type bucket struct {
	bytes int64
	label string
}

// clusterBuckets lists the recommendable storage cluster sizes, doubling
// from 4 KiB to 1 MiB.
//
//nolint:gochecknoglobals // Static lookup table
var clusterBuckets = []bucket{
	{bytes: 4 * kib, label: "4 KB"},
	{bytes: 8 * kib, label: "8 KB"},
	{bytes: 16 * kib, label: "16 KB"},
	{bytes: 32 * kib, label: "32 KB"},
	{bytes: 64 * kib, label: "64 KB"},
	{bytes: 128 * kib, label: "128 KB"},
	{bytes: 256 * kib, label: "256 KB"},
	{bytes: 512 * kib, label: "512 KB"},
	{bytes: 1024 * kib, label: "1 MB"},
}

// StoragePlan is the percentile-based recommendation for a storage cluster.
type StoragePlan struct {
	// ClusterBytes is the recommended cluster size in bytes.
	ClusterBytes int64 `json:"cluster_bytes" yaml:"cluster_bytes"`
	// Bucket is the index selected from the cluster-size list.
	Bucket int `json:"bucket" yaml:"bucket"`
	// Heterogeneous indicates a wide spread between the 25th and 75th
	// percentiles.
	Heterogeneous bool `json:"heterogeneous" yaml:"heterogeneous"`
	// RangeLowBytes is the lower end of the recommended range. Zero unless
	// the spread is heterogeneous across different buckets.
	RangeLowBytes int64 `json:"range_low_bytes,omitempty" yaml:"range_low_bytes,omitempty"`
	// RangeHighBytes is the upper end of the recommended range. Zero unless
	// the spread is heterogeneous across different buckets.
	RangeHighBytes int64 `json:"range_high_bytes,omitempty" yaml:"range_high_bytes,omitempty"`
	// Reason is a one-line explanation of the chosen size.
	Reason string `json:"reason" yaml:"reason"`
}

// pickClusterIndex returns the index of the cluster bucket for value: an
// exact match returns its own bucket, anything else rounds down to the
// bucket below the first larger one, clamped to the ends of the list.
// Non-positive and NaN values select the smallest bucket.
func pickClusterIndex(value float64) int {
	if math.IsNaN(value) || value <= 0 {
		return 0
	}

	for i, b := range clusterBuckets {
		bytes := float64(b.bytes)

		switch {
		case value == bytes:
			return i
		case value < bytes:
			if i == 0 {
				return 0
			}

			return i - 1
		}
	}

	return len(clusterBuckets) - 1
}

// Storage recommends a storage-cluster byte size from interpolated file-size
// percentiles. A heterogeneous spread (p75 at least HeterogeneityRatio times
// p25) widens the advice to a bucket range when the two percentiles land in
// different buckets.
func Storage(median, p25, p75 float64) StoragePlan {
	idx := pickClusterIndex(median)

	plan := StoragePlan{
		ClusterBytes: clusterBuckets[idx].bytes,
		Bucket:       idx,
		Reason:       fmt.Sprintf("median file size falls in the %s cluster", clusterBuckets[idx].label),
	}

	if p25 > 0 && p75 > 0 && p75/p25 >= HeterogeneityRatio {
		plan.Heterogeneous = true

		low, high := pickClusterIndex(p25), pickClusterIndex(p75)
		if low != high {
			plan.RangeLowBytes = clusterBuckets[low].bytes
			plan.RangeHighBytes = clusterBuckets[high].bytes
			plan.Reason += fmt.Sprintf("; sizes are heterogeneous, consider %s to %s",
				clusterBuckets[low].label, clusterBuckets[high].label)
		} else {
			plan.Reason += "; sizes are heterogeneous within one cluster"
		}
	}

	return plan
}
