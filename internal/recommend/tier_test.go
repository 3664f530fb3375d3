package recommend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierIndexBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scenario string
		value    int64
		tiers    []Tier
		want     int
	}{
		{
			scenario: "zero_lands_in_first_tier",
			value:    0,
			tiers:    sizeTiers,
			want:     0,
		},
		{
			scenario: "just_below_first_bound",
			value:    200*mb - 1,
			tiers:    sizeTiers,
			want:     0,
		},
		{
			scenario: "first_bound_is_exclusive",
			value:    200 * mb,
			tiers:    sizeTiers,
			want:     1,
		},
		{
			scenario: "max_int_hits_sentinel",
			value:    math.MaxInt64,
			tiers:    sizeTiers,
			want:     len(sizeTiers) - 1,
		},
		{
			scenario: "count_below_bound",
			value:    1_999,
			tiers:    countTiers,
			want:     0,
		},
		{
			scenario: "count_bound_is_exclusive",
			value:    2_000,
			tiers:    countTiers,
			want:     1,
		},
	}

	for _, tc := range cases {
		tc := tc // capture range variable

		t.Run(tc.scenario, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tierIndex(tc.value, tc.tiers))
		})
	}
}

func TestTierIndexMonotonic(t *testing.T) {
	t.Parallel()

	values := []int64{
		0, 1, 100 * mb, 200 * mb, 999 * mb, 1 * gb, 4 * gb,
		20 * gb, 80 * gb, 400 * gb, 1 * tb, 3 * tb, math.MaxInt64,
	}

	prev := 0

	for _, v := range values {
		idx := tierIndex(v, sizeTiers)

		require.GreaterOrEqual(t, idx, prev, "index must not decrease at value %d", v)

		prev = idx
	}
}

func TestClusterNodesClamps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, clusterNodes(-1))
	assert.Equal(t, 1, clusterNodes(0))
	assert.Equal(t, 4, clusterNodes(3))
	assert.Equal(t, 16, clusterNodes(7))
	assert.Equal(t, 16, clusterNodes(42))
}

func TestWorkers(t *testing.T) {
	t.Parallel()

	type then struct {
		nodes     int
		sizeTier  int
		countTier int
		reason    string
	}

	cases := []struct {
		scenario   string
		totalBytes int64
		fileCount  int64
		then       then
	}{
		{
			scenario: "empty_tree_gets_single_node",
			then:     then{nodes: 1, reason: "equal drivers"},
		},
		{
			scenario:   "size_outranks_count",
			totalBytes: 30 * gb,
			fileCount:  100,
			then:       then{nodes: 6, sizeTier: 4, reason: "driven by total size (under 100 GB)"},
		},
		{
			scenario:   "count_outranks_size",
			totalBytes: 1 * mb,
			fileCount:  3_000_000,
			then:       then{nodes: 8, countTier: 5, reason: "driven by file count (under 5,000,000 files)"},
		},
		{
			scenario:   "sentinel_tiers_cap_the_cluster",
			totalBytes: 5 * tb,
			fileCount:  50_000_000,
			then:       then{nodes: 16, sizeTier: 7, countTier: 7, reason: "equal drivers"},
		},
	}

	for _, tc := range cases {
		tc := tc // capture range variable

		t.Run(tc.scenario, func(t *testing.T) {
			t.Parallel()

			plan := Workers(tc.totalBytes, tc.fileCount)

			assert.Equal(t, tc.then.nodes, plan.Nodes)
			assert.Equal(t, tc.then.sizeTier, plan.SizeTier)
			assert.Equal(t, tc.then.countTier, plan.CountTier)
			assert.Contains(t, plan.Reason, tc.then.reason)
		})
	}
}
