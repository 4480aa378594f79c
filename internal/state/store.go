// Package state implements the per-branch state store: a flat, line-oriented
// file inside the repository's .git directory mapping branch name to a state
// label. Each branch keeps at most one current and one stale (previous)
// record; older values are dropped, not accumulated.
package state

import (
	"fmt"
	"os"
	"strings"
)

// FileName is the name of the state file inside the .git directory
const FileName = "branch-state"

const staleMarker = "-"

// Store is the durable mapping from branch name to current/stale state text.
// It is constructed with an explicit file path so tests can point it at
// temporary files.
//
// No file locking is performed: concurrent writers race with
// last-writer-wins on a whole-file rewrite. The file is small and edited as
// whole lines, so a lost update is the worst case, never a corrupted format.
type Store struct {
	path string
}

// New creates a Store backed by the given file path. The file does not need
// to exist; a missing file is an empty store.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the state file path backing this store
func (s *Store) Path() string {
	return s.path
}

// record is one parsed line of the state file
type record struct {
	branch string
	text   string
	stale  bool
}

func (r record) line() string {
	if r.stale {
		return staleMarker + r.branch + " " + r.text
	}
	return r.branch + " " + r.text
}

// parseLine splits a state file line into a record. Lines that do not
// contain a name/text separator are skipped rather than treated as errors.
func parseLine(line string) (record, bool) {
	var rec record
	if strings.HasPrefix(line, staleMarker) {
		rec.stale = true
		line = line[len(staleMarker):]
	}
	name, text, found := strings.Cut(line, " ")
	if !found || name == "" {
		return record{}, false
	}
	rec.branch = name
	rec.text = text
	return rec, true
}

// load reads and parses the state file. A missing file yields an empty slice.
func (s *Store) load() ([]record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var records []record
	for _, line := range strings.Split(string(data), "\n") {
		if rec, ok := parseLine(line); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// save serializes the records back out, rewriting the whole file
func (s *Store) save(records []record) error {
	var b strings.Builder
	for _, rec := range records {
		b.WriteString(rec.line())
		b.WriteString("\n")
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// demote marks the current record for branch as stale and drops any prior
// stale record in the same pass, preserving the one-current/one-stale
// invariant. Branch names are compared as whole name fields, so a branch
// that is a prefix of another can never match its records.
func demote(records []record, branch string) []record {
	result := records[:0]
	for _, rec := range records {
		if rec.branch == branch && rec.stale {
			continue
		}
		if rec.branch == branch {
			rec.stale = true
		}
		result = append(result, rec)
	}
	return result
}

// Set records text as the current state for branch. The previously current
// text (if any) becomes the branch's stale record; any older stale record
// is dropped.
func (s *Store) Set(branch, text string) error {
	records, err := s.load()
	if err != nil {
		return err
	}
	records = demote(records, branch)
	records = append(records, record{branch: branch, text: text})
	return s.save(records)
}

// Get returns the current state text for branch. A missing file or missing
// record is reported as not-found, never as an error.
func (s *Store) Get(branch string) (string, bool, error) {
	return s.resolve(false, branch)
}

// GetStale returns the most recently superseded state text for branch
func (s *Store) GetStale(branch string) (string, bool, error) {
	return s.resolve(true, branch)
}

// Clear demotes the current record to stale and drops the old stale record,
// without recording a new current value.
func (s *Store) Clear(branch string) error {
	records, err := s.load()
	if err != nil {
		return err
	}
	records = demote(records, branch)
	return s.save(records)
}

// resolve is the lookup helper shared by Get and GetStale: it scans for the
// first record whose stale flag and branch name field match exactly.
func (s *Store) resolve(stale bool, branch string) (string, bool, error) {
	records, err := s.load()
	if err != nil {
		return "", false, err
	}
	for _, rec := range records {
		if rec.stale == stale && rec.branch == branch {
			return rec.text, true, nil
		}
	}
	return "", false, nil
}
