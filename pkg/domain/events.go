package domain

import (
	"context"
	"time"
)

// ResultEvent is emitted once per processed number.
type ResultEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Result    Result        `json:"result"`
	Cached    bool          `json:"cached"`
	Duration  time.Duration `json:"duration"`
}

// RunEvent is emitted when a batch run completes.
type RunEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Source    string        `json:"source"`
	Numbers   int           `json:"numbers"`
	Found     int           `json:"found"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Hooks defines callbacks for engine observability.
// Nil callbacks are skipped.
type Hooks struct {
	OnResult      func(context.Context, *ResultEvent)
	OnRunComplete func(context.Context, *RunEvent)
}
