package authgen

import (
	"github.com/brianvoe/gofakeit/v6"

	"github.com/synthwatch/telegen/internal/config"
)

// Pools is the immutable vocabulary configuration for the event
// generator. All sets are fixed at startup; draws over them are total.
type Pools struct {
	Tenants []string

	// AttackerIPs fail repeatedly, LegitimateIPs mostly succeed,
	// CorporateIPs always succeed.
	AttackerIPs   []string
	LegitimateIPs []string
	CorporateIPs  []string

	LegitimateUsers []string
	AttackerUsers   []string

	AttackerFailureReasons   []string
	LegitimateFailureReasons []string
}

// DefaultPools returns the built-in vocabularies with the supplied
// tenant set. The IPs use documentation ranges (RFC 5737) for the
// attacker pool and private ranges for legitimate and corporate hosts.
func DefaultPools(tenants []string) Pools {
	return Pools{
		Tenants: tenants,
		AttackerIPs: []string{
			"203.0.113.5",
			"203.0.113.42",
			"198.51.100.88",
		},
		LegitimateIPs: []string{
			"10.0.1.50",
			"10.0.1.51",
			"192.168.1.100",
			"192.168.1.101",
			"172.16.0.25",
		},
		CorporateIPs: []string{
			"10.0.0.10",
			"10.0.0.11",
		},
		LegitimateUsers: []string{
			"admin@example.com",
			"john.doe@example.com",
			"jane.smith@example.com",
			"operator@example.com",
		},
		AttackerUsers: []string{
			"admin",
			"administrator",
			"root",
			"test",
			"admin@admin.com",
		},
		AttackerFailureReasons: []string{
			"invalid_credentials",
			"user_not_found",
			"password_mismatch",
			"account_locked",
		},
		LegitimateFailureReasons: []string{
			"invalid_credentials",
			"session_expired",
		},
	}
}

// WithFakeIdentities returns a copy of the pools with n synthesized
// legitimate identities (email + source IP) appended, so long-running
// environments get wider per-user cardinality than the built-in set.
func (p Pools) WithFakeIdentities(n int, faker *gofakeit.Faker) Pools {
	if n <= 0 {
		return p
	}
	users := make([]string, 0, len(p.LegitimateUsers)+n)
	users = append(users, p.LegitimateUsers...)
	ips := make([]string, 0, len(p.LegitimateIPs)+n)
	ips = append(ips, p.LegitimateIPs...)
	for i := 0; i < n; i++ {
		users = append(users, faker.Email())
		ips = append(ips, faker.IPv4Address())
	}
	p.LegitimateUsers = users
	p.LegitimateIPs = ips
	return p
}

// Validate checks that every pool a draw can hit is non-empty.
// An empty tenant set is fatal: no valid event can be attributed.
func (p Pools) Validate() error {
	if len(p.Tenants) == 0 {
		return config.Errorf("tenant set is empty; set TENANTS")
	}
	named := []struct {
		name string
		set  []string
	}{
		{"attacker IP pool", p.AttackerIPs},
		{"legitimate IP pool", p.LegitimateIPs},
		{"corporate IP pool", p.CorporateIPs},
		{"legitimate username vocabulary", p.LegitimateUsers},
		{"attacker username vocabulary", p.AttackerUsers},
		{"attacker failure-reason vocabulary", p.AttackerFailureReasons},
		{"legitimate failure-reason vocabulary", p.LegitimateFailureReasons},
	}
	for _, s := range named {
		if len(s.set) == 0 {
			return config.Errorf("%s is empty", s.name)
		}
	}
	return nil
}
