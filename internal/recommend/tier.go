package recommend

import (
	"fmt"
	"math"
)

// Tier is one entry of an ordered lookup table. A value belongs to the first
// tier whose upper bound strictly exceeds it; the final tier is an unbounded
// sentinel that catches everything else.
type Tier struct {
	// UpperBound is the exclusive upper bound for this tier.
	UpperBound int64
	// Label describes the tier in human terms.
	Label string
}

// Binary byte multipliers, matching the 1024 scaling the formatter prints.
const (
	mb = 1 << 20
	gb = 1 << 30
	tb = 1 << 40
)

// sizeTiers buckets the total scanned bytes.
//
//nolint:gochecknoglobals // Static lookup table
var sizeTiers = []Tier{
	{UpperBound: 200 * mb, Label: "under 200 MB"},
	{UpperBound: 1 * gb, Label: "under 1 GB"},
	{UpperBound: 5 * gb, Label: "under 5 GB"},
	{UpperBound: 25 * gb, Label: "under 25 GB"},
	{UpperBound: 100 * gb, Label: "under 100 GB"},
	{UpperBound: 500 * gb, Label: "under 500 GB"},
	{UpperBound: 2 * tb, Label: "under 2 TB"},
	{UpperBound: math.MaxInt64, Label: "over 2 TB"},
}

// countTiers buckets the number of scanned files.
//
//nolint:gochecknoglobals // Static lookup table
var countTiers = []Tier{
	{UpperBound: 2_000, Label: "under 2,000 files"},
	{UpperBound: 10_000, Label: "under 10,000 files"},
	{UpperBound: 50_000, Label: "under 50,000 files"},
	{UpperBound: 250_000, Label: "under 250,000 files"},
	{UpperBound: 1_000_000, Label: "under 1,000,000 files"},
	{UpperBound: 5_000_000, Label: "under 5,000,000 files"},
	{UpperBound: 20_000_000, Label: "under 20,000,000 files"},
	{UpperBound: math.MaxInt64, Label: "over 20,000,000 files"},
}

// nodeCounts lists the recommendable worker-cluster sizes, indexed by tier
// score.
//
//nolint:gochecknoglobals // Static lookup table
var nodeCounts = []int{1, 2, 3, 4, 6, 8, 12, 16}

// WorkerPlan is the tier-based recommendation for a worker cluster.
type WorkerPlan struct {
	// Nodes is the recommended worker count.
	Nodes int `json:"nodes" yaml:"nodes"`
	// SizeTier is the index selected from the total-size table.
	SizeTier int `json:"size_tier" yaml:"size_tier"`
	// CountTier is the index selected from the file-count table.
	CountTier int `json:"count_tier" yaml:"count_tier"`
	// SizeLabel is the label of the selected size tier.
	SizeLabel string `json:"size_label" yaml:"size_label"`
	// CountLabel is the label of the selected count tier.
	CountLabel string `json:"count_label" yaml:"count_label"`
	// Reason is a one-line explanation of which input drove the result.
	Reason string `json:"reason" yaml:"reason"`
}

// tierIndex returns the index of the first tier whose upper bound strictly
// exceeds value. Values beyond every finite bound land in the sentinel tier.
func tierIndex(value int64, tiers []Tier) int {
	for i, t := range tiers {
		if value < t.UpperBound {
			return i
		}
	}

	return len(tiers) - 1
}

// clusterNodes maps a tier score to a worker count, clamping scores beyond
// the list to its last entry.
func clusterNodes(score int) int {
	if score < 0 {
		score = 0
	}

	if score >= len(nodeCounts) {
		score = len(nodeCounts) - 1
	}

	return nodeCounts[score]
}

// Workers recommends a worker-cluster size for a tree with the given total
// size and file count. The higher of the two tier indices wins.
func Workers(totalBytes, fileCount int64) WorkerPlan {
	sizeTier := tierIndex(totalBytes, sizeTiers)
	countTier := tierIndex(fileCount, countTiers)

	score := sizeTier
	if countTier > score {
		score = countTier
	}

	plan := WorkerPlan{
		Nodes:      clusterNodes(score),
		SizeTier:   sizeTier,
		CountTier:  countTier,
		SizeLabel:  sizeTiers[sizeTier].Label,
		CountLabel: countTiers[countTier].Label,
	}

	switch {
	case sizeTier == countTier:
		plan.Reason = fmt.Sprintf("size and file count are equal drivers (%s, %s)",
			plan.SizeLabel, plan.CountLabel)
	case sizeTier > countTier:
		plan.Reason = fmt.Sprintf("driven by total size (%s)", plan.SizeLabel)
	default:
		plan.Reason = fmt.Sprintf("driven by file count (%s)", plan.CountLabel)
	}

	return plan
}
