package domain

import "time"

// Report is the exportable deliverable: the question asked, the interpreted
// visualization and when it was produced.
type Report struct {
	Question      string
	Visualization Visualization
	GeneratedAt   time.Time
}
