package recstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeapAppendGet(t *testing.T) {
	h := NewHeap()
	assert.Equal(t, RID(0), h.Next())

	r0 := h.Append(Record{ID: 9, Last: "Lee"})
	r1 := h.Append(Record{ID: 3, Last: "Ng"})
	assert.Equal(t, RID(0), r0)
	assert.Equal(t, RID(1), r1)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, RID(2), h.Next())

	rec, ok := h.Get(r1)
	assert.True(t, ok)
	assert.Equal(t, 3, rec.ID)

	rec.Deleted = true
	again, ok := h.Get(r1)
	assert.True(t, ok)
	assert.True(t, again.Deleted)

	for _, rid := range []RID{-1, 2, 100} {
		rec, ok := h.Get(rid)
		assert.False(t, ok, "rid %d", rid)
		assert.Nil(t, rec)
	}
}

func TestHeapAppendCopies(t *testing.T) {
	h := NewHeap()
	r := Record{ID: 1, Last: "Lee"}
	rid := h.Append(r)
	r.Last = "changed"

	rec, _ := h.Get(rid)
	assert.Equal(t, "Lee", rec.Last)
}

func TestRecordString(t *testing.T) {
	r := Record{ID: 4, First: "Ann", Last: "Lee", Major: "CS", GPA: 3.5}
	assert.Equal(t, "4 Ann Lee CS 3.50", r.String())
	r.Deleted = true
	assert.Equal(t, "4 Ann Lee CS 3.50 (deleted)", r.String())
}
