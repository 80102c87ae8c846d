package sink

import "time"

// Record is a status or error message written through the event sink
// channel, sharing its envelope with generated events so the collector
// ingests both uniformly.
type Record struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Service   string `json:"service"`
	Message   string `json:"message"`
	Cycle     int    `json:"cycle,omitempty"`
}

// Status builds an INFO record for periodic generator summaries.
func Status(service, message string, cycle int) Record {
	return Record{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     "INFO",
		Service:   service,
		Message:   message,
		Cycle:     cycle,
	}
}

// Failure builds an ERROR record for a failed generation cycle.
func Failure(service string, cycle int, err error) Record {
	return Record{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     "ERROR",
		Service:   service,
		Message:   "cycle failed: " + err.Error(),
		Cycle:     cycle,
	}
}
