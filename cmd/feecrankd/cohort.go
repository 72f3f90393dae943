// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// feecrankd - Cohort Manifest
//
// The engine itself is deliberately cohort-agnostic (spec.md section 3:
// CohortEntry is call input, never persisted); the daemon is where "who is
// in this vault's cohort" actually lives, as a small JSON file the vault
// operator maintains alongside the daemon's own config.

package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// cohortManifest is the on-disk shape of a vault's investor cohort.
type cohortManifest struct {
	Entries []DistributePair `json:"entries"`
}

func loadCohortManifest(path string) (cohortManifest, error) {
	var m cohortManifest

	raw, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("reading cohort manifest %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("parsing cohort manifest %s: %w", path, err)
	}
	if len(m.Entries) == 0 {
		return m, fmt.Errorf("cohort manifest %s has no entries", path)
	}
	return m, nil
}

// refs returns the stream references of every entry, in manifest order —
// the CohortRefs declaration the first page of a new window submits.
func (m cohortManifest) refs() []string {
	out := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		out[i] = e.StreamRef
	}
	return out
}

// page returns entries [start, start+size), clamped to the manifest's
// length.
func (m cohortManifest) page(start, size int) []DistributePair {
	if start >= len(m.Entries) {
		return nil
	}
	end := start + size
	if end > len(m.Entries) {
		end = len(m.Entries)
	}
	return m.Entries[start:end]
}
