// Package authgen produces synthetic authentication attempt events for
// exercising IP-reputation and anomaly pipelines without live traffic.
//
// Each batch mixes three actor classes with distinct statistical
// profiles: attackers (high failure rate), legitimate users (high
// success rate) and corporate hosts (always allowed).
package authgen

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Class-specific behavior, matching what the downstream reputation
// engine is tuned against.
const (
	attackerSuccessRate   = 0.05
	legitimateSuccessRate = 0.90
	corporateBatchChance  = 0.30

	minAttackerEvents   = 3
	maxAttackerEvents   = 8
	minLegitimateEvents = 5
	maxLegitimateEvents = 10
)

// Generator emits batches of actor-classified auth events. It holds no
// mutable state between cycles beyond the cycle counter used for
// periodic status reporting.
type Generator struct {
	pools Pools
	rng   *rand.Rand
	cycle int
}

// New validates the pools and returns a Generator drawing from the
// given random source.
func New(pools Pools, rng *rand.Rand) (*Generator, error) {
	if err := pools.Validate(); err != nil {
		return nil, err
	}
	return &Generator{pools: pools, rng: rng}, nil
}

// Cycle returns the number of batches generated so far.
func (g *Generator) Cycle() int {
	return g.cycle
}

// Batch generates one cycle's worth of events, traversing actor classes
// in a fixed order: attackers, legitimate users, corporate hosts.
// Consumers must not rely on event position within a batch.
func (g *Generator) Batch(now time.Time) []Event {
	g.cycle++

	events := make([]Event, 0, maxAttackerEvents+maxLegitimateEvents+1)

	n := g.intn(minAttackerEvents, maxAttackerEvents)
	for i := 0; i < n; i++ {
		events = append(events, g.attackerEvent(now))
	}

	n = g.intn(minLegitimateEvents, maxLegitimateEvents)
	for i := 0; i < n; i++ {
		events = append(events, g.legitimateEvent(now))
	}

	if g.rng.Float64() < corporateBatchChance {
		events = append(events, g.corporateEvent(now))
	}

	return events
}

func (g *Generator) attackerEvent(now time.Time) Event {
	success := g.rng.Float64() < attackerSuccessRate
	reason := ""
	if !success {
		reason = g.pick(g.pools.AttackerFailureReasons)
	}
	return g.event(now, ActorAttacker, g.pick(g.pools.AttackerIPs), g.pick(g.pools.AttackerUsers), success, reason)
}

func (g *Generator) legitimateEvent(now time.Time) Event {
	success := g.rng.Float64() < legitimateSuccessRate
	reason := ""
	if !success {
		reason = g.pick(g.pools.LegitimateFailureReasons)
	}
	return g.event(now, ActorLegitimate, g.pick(g.pools.LegitimateIPs), g.pick(g.pools.LegitimateUsers), success, reason)
}

func (g *Generator) corporateEvent(now time.Time) Event {
	// Corporate hosts never fail, so no failure reason is drawn.
	return g.event(now, ActorCorporate, g.pick(g.pools.CorporateIPs), g.pick(g.pools.LegitimateUsers), true, "")
}

func (g *Generator) event(now time.Time, class ActorClass, ip, username string, success bool, reason string) Event {
	userAgent := "Mozilla/5.0"
	if g.rng.Float64() <= 0.3 {
		userAgent = "curl/7.68.0"
	}
	return Event{
		Timestamp: timestamp(now),
		Level:     level(success),
		Service:   serviceName,
		Tenant:    g.pick(g.pools.Tenants),
		EventType: eventType,
		Auth: Attempt{
			EventID:       uuid.NewString(),
			ActorClass:    class,
			IPAddress:     ip,
			Username:      username,
			Success:       success,
			Method:        "password",
			UserAgent:     userAgent,
			FailureReason: reason,
		},
	}
}

// intn draws a uniform integer in [lo, hi].
func (g *Generator) intn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) pick(set []string) string {
	return set[g.rng.Intn(len(set))]
}
