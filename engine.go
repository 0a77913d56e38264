package recstore

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/e11jah/recstore/bst"
)

// prefixBound is appended to a prefix to form the inclusive upper bound of a
// prefix scan. The byte 0xFF never appears in valid UTF-8, so every string
// extending the prefix sorts below the bound.
const prefixBound = "\xff"

var (
	ErrDuplicateID = errors.New("duplicate record id")
)

// Engine keeps a record heap and its two indexes consistent. It is not safe
// for concurrent use; see SyncEngine.
type Engine struct {
	heap      *Heap
	idIndex   *bst.Tree[int, RID]
	lastIndex *bst.Tree[string, []RID]
	// secondary key each slot was indexed under, by RID
	lastKeys []string
	live     int
	logger   *zap.Logger
}

// Stats describes the size and shape of the engine's structures.
type Stats struct {
	HeapSlots      int
	Live           int
	IDKeys         int
	IDHeight       int
	LastNameKeys   int
	LastNameHeight int
}

func New(opts ...Option) *Engine {
	e := &Engine{
		heap:      NewHeap(),
		idIndex:   bst.New[int, RID](),
		lastIndex: bst.New[string, []RID](),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func lastKey(last string) string {
	return strings.ToLower(last)
}

// InsertRecord stores r and indexes it, returning r.ID. A record whose id is
// already live is rejected with ErrDuplicateID and nothing is modified.
func (e *Engine) InsertRecord(r Record) (int, error) {
	rid := e.heap.Next()
	if !e.idIndex.Insert(r.ID, rid) {
		e.logger.Warn("rejected duplicate id", zap.Int("id", r.ID))
		return 0, fmt.Errorf("insert record %d: %w", r.ID, ErrDuplicateID)
	}

	r.Deleted = false
	e.heap.Append(r)

	key := lastKey(r.Last)
	e.lastKeys = append(e.lastKeys, key)
	e.lastIndex.Update(key, func(rids []RID, _ bool) ([]RID, bool) {
		return append(rids, rid), true
	})
	e.live++

	e.logger.Debug("inserted record", zap.Int("id", r.ID), zap.Int("rid", int(rid)))
	return r.ID, nil
}

// DeleteByID marks the record with id as deleted and drops it from both
// indexes. It returns false if no live record has that id.
func (e *Engine) DeleteByID(id int) bool {
	rid, ok := e.idIndex.Find(id)
	if !ok {
		return false
	}
	rec, ok := e.heap.Get(rid)
	if !ok || rec.Deleted {
		return false
	}

	// indexes first, so the flag is never set on a record they still resolve
	e.idIndex.Erase(id)
	// the stored key, not rec.Last: callers hold rec and may have edited it
	e.lastIndex.Update(e.lastKeys[rid], func(rids []RID, _ bool) ([]RID, bool) {
		rids = removeRID(rids, rid)
		return rids, len(rids) > 0
	})
	rec.Deleted = true
	e.live--

	e.logger.Debug("deleted record", zap.Int("id", id), zap.Int("rid", int(rid)))
	return true
}

// removeRID drops rid from rids keeping the remaining order.
func removeRID(rids []RID, rid RID) []RID {
	for i, r := range rids {
		if r == rid {
			return append(rids[:i], rids[i+1:]...)
		}
	}
	return rids
}

// FindByID returns the live record with id and the number of comparisons the
// lookup took.
func (e *Engine) FindByID(id int) (*Record, int, bool) {
	e.idIndex.ResetMetrics()
	rid, ok := e.idIndex.Find(id)
	cmp := e.idIndex.Comparisons()
	if !ok {
		return nil, cmp, false
	}

	rec, ok := e.heap.Get(rid)
	if !ok || rec.Deleted {
		return nil, cmp, false
	}
	return rec, cmp, true
}

// RangeByID returns the live records with lo <= id <= hi in ascending id
// order, together with the comparison count of the scan.
func (e *Engine) RangeByID(lo, hi int) ([]*Record, int) {
	e.idIndex.ResetMetrics()
	var out []*Record
	e.idIndex.RangeApply(lo, hi, func(_ int, rid RID) bool {
		if rec, ok := e.heap.Get(rid); ok && !rec.Deleted {
			out = append(out, rec)
		}
		return true
	})
	return out, e.idIndex.Comparisons()
}

// PrefixByLast returns the live records whose last name starts with prefix,
// ignoring case. Records come in last name order and, within one last name,
// in insertion order.
func (e *Engine) PrefixByLast(prefix string) ([]*Record, int) {
	low := lastKey(prefix)
	e.lastIndex.ResetMetrics()

	var out []*Record
	e.lastIndex.RangeApply(low, low+prefixBound, func(k string, rids []RID) bool {
		if !strings.HasPrefix(k, low) {
			return true
		}
		for _, rid := range rids {
			if rec, ok := e.heap.Get(rid); ok && !rec.Deleted {
				out = append(out, rec)
			}
		}
		return true
	})
	return out, e.lastIndex.Comparisons()
}

// Len is the number of live records.
func (e *Engine) Len() int {
	return e.live
}

// Get returns the record stored at rid, deleted or not.
func (e *Engine) Get(rid RID) (*Record, bool) {
	return e.heap.Get(rid)
}

// Slots counts heap slots, deleted ones included. It is also the RID the
// next successful insert receives.
func (e *Engine) Slots() int {
	return e.heap.Len()
}

func (e *Engine) Stats() Stats {
	return Stats{
		HeapSlots:      e.heap.Len(),
		Live:           e.live,
		IDKeys:         e.idIndex.Size(),
		IDHeight:       e.idIndex.Height(),
		LastNameKeys:   e.lastIndex.Size(),
		LastNameHeight: e.lastIndex.Height(),
	}
}
