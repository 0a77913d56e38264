// Package recstore is an in-memory record store with a primary index on the
// record id and a secondary index on the lowercased last name. Records live
// in an append-only heap and are never physically removed; deletion only
// marks them.
package recstore

import "fmt"

// Record is a student row. ID must be unique among live records and Last
// feeds the secondary index; the remaining fields are payload.
type Record struct {
	ID      int
	First   string
	Last    string
	Major   string
	GPA     float64
	Deleted bool
}

func (r Record) String() string {
	s := fmt.Sprintf("%d %s %s %s %.2f", r.ID, r.First, r.Last, r.Major, r.GPA)
	if r.Deleted {
		s += " (deleted)"
	}
	return s
}
