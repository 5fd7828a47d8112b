package model

import (
	"fmt"
	"time"
)

// Invocation represents a single command dispatched over the bridge
type Invocation struct {
	ID         string
	Command    string
	Status     InvocationStatus
	LastError  string    // error message if the handler failed
	StartedAt  time.Time // when the handler started
	FinishedAt time.Time // when the handler returned
}

// Duration returns how long the handler ran, or zero if it has not finished
func (inv *Invocation) Duration() time.Duration {
	if inv.StartedAt.IsZero() || inv.FinishedAt.IsZero() {
		return 0
	}
	return inv.FinishedAt.Sub(inv.StartedAt)
}

// ClearReport describes the outcome of a cache clear
type ClearReport struct {
	Dir     string   // cache directory that was scanned
	Marker  string   // substring an entry name must contain to be removed
	Removed []string // entry names removed, in processing order
	Scanned int      // direct entries enumerated
}

// Summary returns a short human readable description of the report
func (r *ClearReport) Summary() string {
	if r == nil {
		return ""
	}
	switch len(r.Removed) {
	case 0:
		return fmt.Sprintf("No cache files matching %q in %s", r.Marker, r.Dir)
	case 1:
		return fmt.Sprintf("Removed 1 cache file from %s", r.Dir)
	default:
		return fmt.Sprintf("Removed %d cache files from %s", len(r.Removed), r.Dir)
	}
}
