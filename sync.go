package recstore

import "sync"

// SyncEngine serialises access to an Engine. Queries take the same exclusive
// lock as mutations because they reset the index comparison counters.
type SyncEngine struct {
	mu sync.Mutex
	e  *Engine
}

func NewSync(opts ...Option) *SyncEngine {
	return &SyncEngine{e: New(opts...)}
}

func (s *SyncEngine) InsertRecord(r Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.InsertRecord(r)
}

func (s *SyncEngine) DeleteByID(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.DeleteByID(id)
}

// FindByID returns a copy of the record since the heap slot may be flagged
// deleted by another goroutine once the lock is released.
func (s *SyncEngine) FindByID(id int) (Record, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, cmp, ok := s.e.FindByID(id)
	if !ok {
		return Record{}, cmp, false
	}
	return *rec, cmp, true
}

func (s *SyncEngine) RangeByID(lo, hi int) ([]Record, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, cmp := s.e.RangeByID(lo, hi)
	return copyRecords(recs), cmp
}

func (s *SyncEngine) PrefixByLast(prefix string) ([]Record, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs, cmp := s.e.PrefixByLast(prefix)
	return copyRecords(recs), cmp
}

func (s *SyncEngine) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Len()
}

func (s *SyncEngine) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Stats()
}

func copyRecords(recs []*Record) []Record {
	out := make([]Record, len(recs))
	for i, r := range recs {
		out[i] = *r
	}
	return out
}
