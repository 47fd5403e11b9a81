package bst

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/openacid/testkeys"
	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/require"
)

// benchMaxKeys caps each word set. Building a tree in sorted order makes a
// chain, which costs quadratic time to insert.
const benchMaxKeys = 1 << 13

var bench = rand.New(rand.NewSource(0))

func benchBigKeySet(b *testing.B, f func(b *testing.B, keys []string)) {
	for _, fn := range testkeys.AssetNames() {
		keys := getKeys(fn)

		n := len(keys)
		if n < 1000 {
			continue
		}
		if n > benchMaxKeys {
			keys = keys[:benchMaxKeys]
		}

		b.Run(fn, func(b *testing.B) {
			f(b, keys)
		})
	}
}

func shuffledCopy(keys []string) []string {
	s := slices.Clone(keys)
	bench.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
	return s
}

func BenchmarkWordsTreeInsert(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, keys []string) {
		shuffled := shuffledCopy(keys)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tree := New[string]()
			for _, k := range shuffled {
				tree.Insert(k)
			}
		}
	})
}

// BenchmarkWordsTreeFind compares lookups in a tree built from the word
// list as given, from a shuffled copy, and after rebalancing.
func BenchmarkWordsTreeFind(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, keys []string) {
		sequential := New(keys...)
		shuffled := New(shuffledCopy(keys)...)
		rebalanced := New(shuffledCopy(keys)...)
		rebalanced.Rebalance()

		for _, c := range []struct {
			name string
			tree Tree[string]
		}{
			{"sequential", sequential},
			{"shuffled", shuffled},
			{"rebalanced", rebalanced},
		} {
			b.Run(c.name, func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					c.tree.FindIterative(keys[bench.Intn(len(keys))])
				}
			})
		}

		b.Run("recursive", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				rebalanced.Find(keys[bench.Intn(len(keys))])
			}
		})
	})
}

func BenchmarkWordsTreeRebalance(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, keys []string) {
		tree := New(shuffledCopy(keys)...)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			tree.Rebalance()
		}
	})
}

type llrbString string

func (s llrbString) Less(than llrb.Item) bool {
	return s < than.(llrbString)
}

// BenchmarkWordsBaselines runs the same lookups against balanced trees from
// other libraries.
func BenchmarkWordsBaselines(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, keys []string) {
		shuffled := shuffledCopy(keys)

		b.Run("gods-redblack", func(b *testing.B) {
			tree := redblacktree.NewWithStringComparator()
			for _, k := range shuffled {
				tree.Put(k, struct{}{})
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tree.Get(keys[bench.Intn(len(keys))])
			}
		})

		b.Run("google-btree", func(b *testing.B) {
			tree := btree.NewG[string](32, func(a, b string) bool { return a < b })
			for _, k := range shuffled {
				tree.ReplaceOrInsert(k)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tree.Get(keys[bench.Intn(len(keys))])
			}
		})

		b.Run("llrb", func(b *testing.B) {
			tree := llrb.New()
			for _, k := range shuffled {
				tree.ReplaceOrInsert(llrbString(k))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tree.Get(llrbString(keys[bench.Intn(len(keys))]))
			}
		})
	})
}

func TestWordsAgreeWithBaselines(t *testing.T) {
	keys := getKeys("1mvl5_10")[:benchMaxKeys]
	shuffled := shuffledCopy(keys)

	tree := New(shuffled...)
	bt := btree.NewG[string](32, func(a, b string) bool { return a < b })
	rb := redblacktree.NewWithStringComparator()
	for _, k := range shuffled {
		bt.ReplaceOrInsert(k)
		rb.Put(k, struct{}{})
	}

	var ascending []string
	bt.Ascend(func(k string) bool {
		ascending = append(ascending, k)
		return true
	})
	require.Equal(t, ascending, slices.Compact(tree.InOrder()))

	for _, k := range shuffled[:100] {
		_, found := rb.Get(k)
		_, ok := tree.FindIterative(k)
		require.Equal(t, found, ok, k)

		succ, ok := tree.Successor(k)
		ceiling, found := rb.Ceiling(k + "\x00")
		require.Equal(t, found, ok, k)
		if ok {
			require.Equal(t, ceiling.Key, succ, k)
		}
	}
}
