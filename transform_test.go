package pointfree_test

import (
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/KasperOmsK/pointfree"

	"github.com/stretchr/testify/require"
)

func TestMap_TransformsValues(t *testing.T) {
	p := pointfree.Map(func(v int) int {
		return v * 2
	}, seqOf(1, 2, 3))

	require.Equal(t, []int{2, 4, 6}, slices.Collect(p))
}

func TestMap_EmptyInput(t *testing.T) {
	p := pointfree.Map(strings.ToUpper, seqOf[string]())

	require.Empty(t, slices.Collect(p))
}

func TestMap_IsLazy(t *testing.T) {
	calls := 0
	p := pointfree.Map(func(v int) int {
		calls++
		return v
	}, seqOf(1, 2, 3))

	require.Equal(t, 0, calls)

	for range p {
		break
	}
	require.Equal(t, 1, calls)
}

func TestFilter_FiltersCorrectly(t *testing.T) {
	p := pointfree.Filter(func(v int) bool {
		return v%2 == 0
	}, seqOf(1, 2, 3, 4, 5))

	require.Equal(t, []int{2, 4}, slices.Collect(p))
}

func TestFilter_CallsPredicateOncePerValue(t *testing.T) {
	seen := map[int]int{}
	p := pointfree.Filter(func(v int) bool {
		seen[v]++
		return v > 1
	}, seqOf(1, 2, 3))

	require.Equal(t, []int{2, 3}, slices.Collect(p))
	require.Equal(t, map[int]int{1: 1, 2: 1, 3: 1}, seen)
}

func TestFilterNot_IsComplementOfFilter(t *testing.T) {
	even := pointfree.Even[int]

	kept := slices.Collect(pointfree.Filter(even, seqOf(1, 2, 3, 4, 5)))
	dropped := slices.Collect(pointfree.FilterNot(even, seqOf(1, 2, 3, 4, 5)))

	require.Equal(t, []int{1, 3, 5}, dropped)
	require.ElementsMatch(t, []int{1, 2, 3, 4, 5}, pointfree.Concat(slices.Values(kept), slices.Values(dropped)))
}

func TestChain_RunsInOnePass(t *testing.T) {
	var trace []string
	src := pointfree.Tap(func(v int) {
		trace = append(trace, "src")
	}, seqOf(1, 2, 3))

	doubled := pointfree.Map(func(v int) int {
		trace = append(trace, "map")
		return v * 2
	}, src)
	big := pointfree.Filter(func(v int) bool {
		trace = append(trace, "filter")
		return v > 2
	}, doubled)
	out := pointfree.Map(func(v int) int {
		trace = append(trace, "map2")
		return v + 1
	}, big)

	require.Empty(t, trace)
	require.Equal(t, []int{5, 7}, slices.Collect(out))
	require.Equal(t, []string{
		"src", "map", "filter",
		"src", "map", "filter", "map2",
		"src", "map", "filter", "map2",
	}, trace)
}

func TestTap(t *testing.T) {
	counter := 0
	p := pointfree.Tap(func(i int) {
		counter++
	}, seqOf(1, 2))

	require.Equal(t, 0, counter)
	require.Equal(t, []int{1, 2}, slices.Collect(p))
	require.Equal(t, 2, counter)
}

func TestTap_NoFunc(t *testing.T) {
	require.Panics(t, func() {
		pointfree.Tap(nil, seqOf(1))
	})
}

func TestChunk_PanicInvalidChunkSize(t *testing.T) {
	src := seqOf(1, 2, 3)

	require.Panics(t, func() {
		pointfree.Chunk(-1, src)
	})

	require.Panics(t, func() {
		pointfree.Chunk(0, src)
	})
}

func TestChunk_GroupsCorrectly(t *testing.T) {
	p := pointfree.Chunk(2, seqOf(1, 2, 3, 4, 5))

	require.Equal(t, [][]int{
		{1, 2},
		{3, 4},
		{5},
	}, slices.Collect(p))
}

func TestChunk_ChunksDoNotAlias(t *testing.T) {
	chunks := slices.Collect(pointfree.Chunk(2, seqOf(1, 2, 3, 4)))

	chunks[0] = append(chunks[0], 99)
	require.Equal(t, []int{3, 4}, chunks[1])
}

func TestFlatMap_FlattensInOrder(t *testing.T) {
	p := pointfree.FlatMap(func(v int) []int {
		return []int{v, v * 10}
	}, seqOf(1, 2, 3))

	require.Equal(t, []int{
		1, 10,
		2, 20,
		3, 30,
	}, slices.Collect(p))
}

func TestFlatMap_MatchesFlattenOfMap(t *testing.T) {
	split := func(in string) []string { return strings.Split(in, ",") }

	v1 := pointfree.FlatMap(split, seqOf("A,B,C", "D,E,F"))
	v2 := pointfree.Flatten(pointfree.Map(split, seqOf("A,B,C", "D,E,F")))

	require.Equal(t, slices.Collect(v1), slices.Collect(v2))
}

func TestGroupBy(t *testing.T) {
	grouped := pointfree.GroupBy(func(s string) string { return s },
		seqOf("A", "A", "B", "B", "A", "C", "C", "C"))

	expected := [][]string{
		{"A", "A"},
		{"B", "B"},
		{"A"},
		{"C", "C", "C"},
	}
	require.Equal(t, expected, slices.Collect(grouped))
}

func TestGroupBy_EmptyInput(t *testing.T) {
	grouped := pointfree.GroupBy(func(v int) int { return v }, seqOf[int]())

	require.Empty(t, slices.Collect(grouped))
}

func TestGroupFold_SumPerGroup(t *testing.T) {
	type Record struct {
		Key   string
		Value int
	}

	aggregated := pointfree.GroupFold(
		func(r Record) string { return r.Key },               // key function
		func(first Record) int { return 0 },                  // init accumulator
		func(acc int, r Record) int { return acc + r.Value }, // fold
		seqOf(
			Record{"A", 1},
			Record{"A", 2},
			Record{"B", 10},
			Record{"B", 5},
			Record{"A", 3}, // new A group
		))

	require.Equal(t, []int{3, 15, 3}, slices.Collect(aggregated))
}

func TestGroupFold_EmptyInput(t *testing.T) {
	aggregated := pointfree.GroupFold(
		func(v int) int { return v },
		func(int) int { return 0 },
		pointfree.Add[int],
		seqOf[int]())

	require.Empty(t, slices.Collect(aggregated))
}

func TestZip_StopsAtShorter(t *testing.T) {
	zipped := pointfree.Zip(seqOf(1, 2, 3), seqOf("a", "b"))

	require.Equal(t, []pointfree.Pair[int, string]{
		{First: 1, Second: "a"},
		{First: 2, Second: "b"},
	}, slices.Collect(zipped))

	zipped = pointfree.Zip(seqOf(1), seqOf("a", "b"))
	require.Len(t, slices.Collect(zipped), 1)
}

func TestZipWith(t *testing.T) {
	bothZero := func(x, y int) bool { return x&y == 0 }

	out := pointfree.ZipWith(bothZero, seqOf(1, 2, 3), seqOf(1, 0, 1))

	require.Equal(t, []bool{false, true, false}, slices.Collect(out))
}

func TestZipWith_EarlyBreak(t *testing.T) {
	out := pointfree.ZipWith(pointfree.Add[int], seqOf(1, 2, 3), seqOf(10, 20, 30))

	var got []int
	for v := range out {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []int{11, 22}, got)
}

func seqOf[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}
