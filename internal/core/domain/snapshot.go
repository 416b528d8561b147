package domain

import "time"

// Snapshot records the aggregates computed for one node during a run.
type Snapshot struct {
	Node      string    `json:"node,omitempty"`
	Size      int       `json:"size,omitempty"`
	Leaves    int       `json:"leaves,omitempty"`
	Digest    string    `json:"digest,omitempty"`
	RunID     string    `json:"run_id,omitempty"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
