package authgen

import "time"

// ActorClass determines an auth event's statistical profile and which
// vocabulary pools it draws from.
type ActorClass string

const (
	ActorAttacker   ActorClass = "attacker"
	ActorLegitimate ActorClass = "legitimate"
	ActorCorporate  ActorClass = "corporate"
)

// Event is one authentication attempt record as written to the event
// sink. Envelope fields (timestamp, level, service, tenant, event_type)
// match what the downstream log collector expects.
type Event struct {
	Timestamp string  `json:"timestamp"`
	Level     string  `json:"level"`
	Service   string  `json:"service"`
	Tenant    string  `json:"tenant"`
	EventType string  `json:"event_type"`
	Auth      Attempt `json:"auth"`
}

// Attempt is the authentication payload of an Event.
// FailureReason is set iff Success is false and the actor class defines
// a reason vocabulary.
type Attempt struct {
	EventID       string     `json:"event_id"`
	ActorClass    ActorClass `json:"actor_class"`
	IPAddress     string     `json:"ip_address"`
	Username      string     `json:"username"`
	Success       bool       `json:"success"`
	Method        string     `json:"method"`
	UserAgent     string     `json:"user_agent"`
	FailureReason string     `json:"failure_reason,omitempty"`
}

const (
	serviceName = "auth-service"
	eventType   = "authentication"
)

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func level(success bool) string {
	if success {
		return "INFO"
	}
	return "WARN"
}
