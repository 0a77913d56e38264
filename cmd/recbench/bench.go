package main

import (
	"math/rand"
	"strings"

	"github.com/google/btree"
	"go.uber.org/zap"

	"github.com/e11jah/recstore"
	"github.com/e11jah/recstore/internal/config"
)

var syllables = []string{
	"an", "be", "chen", "da", "el", "fo", "gar", "ha", "in", "jo", "ka", "lee",
	"lin", "ma", "ng", "o", "pe", "qu", "ro", "si", "ta", "u", "vo", "wu", "xi", "ya", "zo",
}

var majors = []string{"CS", "Math", "Physics", "Biology", "History", "Music"}

// result holds the comparison totals of one query class.
type result struct {
	Class            string
	Queries          int
	Hits             int
	BSTComparisons   int
	BTreeComparisons int
}

func (r result) bstAvg() float64 {
	return avg(r.BSTComparisons, r.Queries)
}

func (r result) btreeAvg() float64 {
	return avg(r.BTreeComparisons, r.Queries)
}

func avg(total, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}

// countingBTree is a google/btree whose comparator counts its calls.
type countingBTree[T any] struct {
	tree        *btree.BTreeG[T]
	comparisons int
}

func newCountingBTree[T any](degree int, less func(a, b T) bool) *countingBTree[T] {
	c := &countingBTree[T]{}
	c.tree = btree.NewG[T](degree, func(a, b T) bool {
		c.comparisons++
		return less(a, b)
	})
	return c
}

func lastName(rnd *rand.Rand) string {
	var b strings.Builder
	for i, n := 0, 1+rnd.Intn(3); i < n; i++ {
		b.WriteString(syllables[rnd.Intn(len(syllables))])
	}
	s := b.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func dataset(cfg *config.Config, rnd *rand.Rand) []recstore.Record {
	ids := rnd.Perm(cfg.Dataset.Size)
	if cfg.Dataset.Order == config.OrderSorted {
		for i := range ids {
			ids[i] = i
		}
	}

	recs := make([]recstore.Record, len(ids))
	for i, id := range ids {
		recs[i] = recstore.Record{
			ID:    id,
			First: lastName(rnd),
			Last:  lastName(rnd),
			Major: majors[rnd.Intn(len(majors))],
			GPA:   float64(rnd.Intn(401)) / 100,
		}
	}
	return recs
}

// run loads a dataset into the engine and a B-tree baseline, deletes a share
// of it and compares comparison counts for point, range and prefix queries.
func run(cfg *config.Config, logger *zap.Logger) ([]result, recstore.Stats, error) {
	rnd := rand.New(rand.NewSource(cfg.Dataset.Seed))
	engine := recstore.New(recstore.WithLogger(logger.Named("engine")))

	ids := newCountingBTree(cfg.Bench.BTreeDegree, func(a, b int) bool { return a < b })
	lasts := newCountingBTree(cfg.Bench.BTreeDegree, func(a, b string) bool { return a < b })
	lastRefs := map[string]int{}

	recs := dataset(cfg, rnd)
	for _, r := range recs {
		if _, err := engine.InsertRecord(r); err != nil {
			return nil, recstore.Stats{}, err
		}
		ids.tree.ReplaceOrInsert(r.ID)
		k := strings.ToLower(r.Last)
		if lastRefs[k] == 0 {
			lasts.tree.ReplaceOrInsert(k)
		}
		lastRefs[k]++
	}
	logger.Info("loaded dataset",
		zap.Int("records", len(recs)),
		zap.String("order", cfg.Dataset.Order),
		zap.Int("id_height", engine.Stats().IDHeight))

	deletes := int(float64(len(recs)) * cfg.Dataset.DeleteFraction)
	for _, i := range rnd.Perm(len(recs))[:deletes] {
		r := recs[i]
		if !engine.DeleteByID(r.ID) {
			continue
		}
		ids.tree.Delete(r.ID)
		k := strings.ToLower(r.Last)
		if lastRefs[k]--; lastRefs[k] == 0 {
			lasts.tree.Delete(k)
			delete(lastRefs, k)
		}
	}
	logger.Info("deleted records", zap.Int("deleted", deletes), zap.Int("live", engine.Len()))

	point := result{Class: "point"}
	ranged := result{Class: "range"}
	prefix := result{Class: "prefix"}
	size := len(recs)

	for q := 0; q < cfg.Queries.Count && size > 0; q++ {
		id := rnd.Intn(size)
		_, cmp, ok := engine.FindByID(id)
		ids.comparisons = 0
		ids.tree.Has(id)
		point.add(cmp, ids.comparisons, boolToInt(ok))

		lo := rnd.Intn(size)
		hi := lo + cfg.Queries.RangeWidth - 1
		found, cmp := engine.RangeByID(lo, hi)
		ids.comparisons = 0
		ids.tree.AscendRange(lo, hi+1, func(int) bool { return true })
		ranged.add(cmp, ids.comparisons, len(found))

		p := strings.ToLower(recs[rnd.Intn(size)].Last)
		if len(p) > cfg.Queries.PrefixLen {
			p = p[:cfg.Queries.PrefixLen]
		}
		found, cmp = engine.PrefixByLast(p)
		lasts.comparisons = 0
		lasts.tree.AscendRange(p, p+"\xff", func(string) bool { return true })
		prefix.add(cmp, lasts.comparisons, len(found))
	}

	results := []result{point, ranged, prefix}
	for _, r := range results {
		logger.Info("query class",
			zap.String("class", r.Class),
			zap.Int("queries", r.Queries),
			zap.Int("hits", r.Hits),
			zap.Float64("bst_avg_comparisons", r.bstAvg()),
			zap.Float64("btree_avg_comparisons", r.btreeAvg()))
	}
	return results, engine.Stats(), nil
}

func (r *result) add(bst, bt, hits int) {
	r.Queries++
	r.Hits += hits
	r.BSTComparisons += bst
	r.BTreeComparisons += bt
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
