// Package oracle is a SQLite-backed reference for differential tests of the
// record engine. It answers the same point, range and prefix questions with
// SQL so test results can be compared row for row.
package oracle

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE records (
	rid        INTEGER PRIMARY KEY,
	id         INTEGER NOT NULL,
	lower_last TEXT    NOT NULL,
	deleted    INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX records_id ON records (id);
CREATE INDEX records_last ON records (lower_last);`

type Oracle struct {
	db *sql.DB
}

// Open creates an empty in-memory database.
func Open() (*Oracle, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Oracle{db: db}, nil
}

func (o *Oracle) Close() error {
	return o.db.Close()
}

func (o *Oracle) Insert(rid, id int, last string) error {
	_, err := o.db.Exec("INSERT INTO records (rid, id, lower_last) VALUES (?, ?, ?)",
		rid, id, strings.ToLower(last))
	return err
}

// Delete flags the live row with id and reports whether one existed.
func (o *Oracle) Delete(id int) (bool, error) {
	res, err := o.db.Exec("UPDATE records SET deleted = 1 WHERE id = ? AND deleted = 0", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Find returns the rid of the live row with id.
func (o *Oracle) Find(id int) (int, bool, error) {
	var rid int
	err := o.db.QueryRow("SELECT rid FROM records WHERE id = ? AND deleted = 0", id).Scan(&rid)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return rid, true, nil
}

// Range returns the rids of live rows with lo <= id <= hi ordered by id.
func (o *Oracle) Range(lo, hi int) ([]int, error) {
	return o.rids("SELECT rid FROM records WHERE deleted = 0 AND id BETWEEN ? AND ? ORDER BY id", lo, hi)
}

// Prefix returns the rids of live rows whose lowercased last name starts
// with the lowercased prefix, ordered by last name then insertion.
func (o *Oracle) Prefix(prefix string) ([]int, error) {
	low := strings.ToLower(prefix)
	return o.rids(`SELECT rid FROM records
		WHERE deleted = 0 AND substr(lower_last, 1, length(?)) = ?
		ORDER BY lower_last, rid`, low, low)
}

func (o *Oracle) rids(query string, args ...any) ([]int, error) {
	rows, err := o.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var rid int
		if err := rows.Scan(&rid); err != nil {
			return nil, err
		}
		out = append(out, rid)
	}
	return out, rows.Err()
}
