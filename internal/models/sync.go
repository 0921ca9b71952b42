package models

// SyncEntry records one attempt to push local records to the remote
// inventory API.
type SyncEntry struct {
	ID        int    `json:"id"`
	Endpoint  string `json:"endpoint"`
	Records   int    `json:"records"`
	Outcome   string `json:"outcome"`
	Error     string `json:"error,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Sync outcomes.
const (
	SyncOutcomeOK       = "ok"       // proxy accepted the batch
	SyncOutcomeFallback = "fallback" // proxy failed, direct endpoint accepted
	SyncOutcomeTimeout  = "timeout"  // every attempt timed out
	SyncOutcomeFailed   = "failed"   // every attempt failed
)
