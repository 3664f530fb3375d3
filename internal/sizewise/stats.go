package sizewise

import (
	"math"
	"sort"
	"time"
)

// Stats holds aggregate statistics for a single scan.
type Stats struct {
	// FileCount is the number of regular files folded into the totals.
	FileCount int64 `json:"file_count" yaml:"file_count"`
	// DirCount is the number of directories visited, the root included.
	// Directories whose listing failed still count as visited.
	DirCount int64 `json:"dir_count" yaml:"dir_count"`
	// TotalBytes is the cumulative size of all counted files.
	TotalBytes int64 `json:"total_bytes" yaml:"total_bytes"`
	// LargestFileBytes is the size of the largest file encountered.
	LargestFileBytes int64 `json:"largest_file_bytes" yaml:"largest_file_bytes"`
	// LargestFilePath is the path of the largest file. The first file seen
	// wins ties.
	LargestFilePath string `json:"largest_file_path" yaml:"largest_file_path"`
	// SkippedSymlinks is the number of symbolic links excluded from the scan.
	SkippedSymlinks int64 `json:"skipped_symlinks" yaml:"skipped_symlinks"`
	// UnreadableEntries is the number of directories that could not be listed
	// plus files that could not be stat'ed.
	UnreadableEntries int64 `json:"unreadable_entries" yaml:"unreadable_entries"`
	// MedianBytes is the interpolated 50th percentile of file sizes.
	// Meaningful only when FileCount > 0.
	MedianBytes float64 `json:"median_bytes" yaml:"median_bytes"`
	// P25Bytes is the interpolated 25th percentile of file sizes.
	P25Bytes float64 `json:"p25_bytes" yaml:"p25_bytes"`
	// P75Bytes is the interpolated 75th percentile of file sizes.
	P75Bytes float64 `json:"p75_bytes" yaml:"p75_bytes"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// accumulator aggregates the running totals during a scan. It is owned
// exclusively by the traversal loop, so no locking is involved.
type accumulator struct {
	stats Stats
	sizes []int64
}

// addFile folds one regular file into the running totals.
func (a *accumulator) addFile(path string, size int64) {
	a.stats.FileCount++
	a.stats.TotalBytes += size
	a.sizes = append(a.sizes, size)

	// Strictly-greater comparison keeps the first file on ties; the first
	// file overall always registers, whatever its size.
	if size > a.stats.LargestFileBytes || a.stats.LargestFilePath == "" {
		a.stats.LargestFileBytes = size
		a.stats.LargestFilePath = path
	}
}

// finalize sorts the collected sizes, fills in the percentile fields and
// returns the completed Stats.
func (a *accumulator) finalize() *Stats {
	sort.Slice(a.sizes, func(i, j int) bool {
		return a.sizes[i] < a.sizes[j]
	})

	if len(a.sizes) > 0 {
		a.stats.MedianBytes = Percentile(a.sizes, 0.5)
		a.stats.P25Bytes = Percentile(a.sizes, 0.25)
		a.stats.P75Bytes = Percentile(a.sizes, 0.75)
	}

	return &a.stats
}

// Percentile returns the value at rank p in sorted, which must be sorted
// ascending. The rank maps to the fractional index (n-1)*p, linearly
// interpolated between the two bracketing elements; p is clamped to [0, 1].
// An empty input yields 0.
func Percentile(sorted []int64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}

	if p < 0 {
		p = 0
	}

	if p > 1 {
		p = 1
	}

	idx := float64(len(sorted)-1) * p

	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))

	if lo == hi {
		return float64(sorted[lo])
	}

	frac := idx - float64(lo)

	return float64(sorted[lo]) + frac*(float64(sorted[hi])-float64(sorted[lo]))
}
