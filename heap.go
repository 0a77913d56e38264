package recstore

// RID is the position a record took in the heap when it was appended.
type RID int

// Heap holds every record ever inserted. Slots are never reclaimed or
// renumbered, so a RID stays valid for the lifetime of the heap.
type Heap struct {
	// pointers keep references handed out by Get stable while the
	// slice grows
	records []*Record
}

func NewHeap() *Heap {
	return &Heap{}
}

// Append stores a copy of r and returns its RID.
func (h *Heap) Append(r Record) RID {
	rec := r
	h.records = append(h.records, &rec)
	return RID(len(h.records) - 1)
}

// Get returns the record at rid whether or not it has been deleted.
func (h *Heap) Get(rid RID) (*Record, bool) {
	if rid < 0 || int(rid) >= len(h.records) {
		return nil, false
	}
	return h.records[rid], true
}

// Next is the RID the next Append will return.
func (h *Heap) Next() RID {
	return RID(len(h.records))
}

// Len counts all slots, deleted ones included.
func (h *Heap) Len() int {
	return len(h.records)
}
