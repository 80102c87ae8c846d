// Package sink holds the output channels the generators write to: an
// append-only NDJSON stream for events and a Pushgateway client for
// metric batches.
package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// NDJSON writes newline-delimited JSON objects to a stream, one per
// event or status record. Writes are fire-and-forget from the
// consumer's perspective; errors only surface to the supervising loop.
type NDJSON struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewNDJSON returns an NDJSON sink writing to w (stdout in production,
// a buffer in tests).
func NewNDJSON(w io.Writer) *NDJSON {
	return &NDJSON{enc: json.NewEncoder(w)}
}

// Emit encodes v as one JSON line.
func (s *NDJSON) Emit(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	return nil
}
