package auth

import "testing"

func TestPolicyFirstMatchWins(t *testing.T) {
	// Ordering is the contract: the broader public rule listed first
	// shadows the later admin rule.
	policy := NewAccessPolicy([]AccessRule{
		{Pattern: "/public/**", RequiresAuth: false},
		{Pattern: "/public/admin/**", RequiresAuth: true},
	})

	if policy.RequiresAuth("/public/admin/x") {
		t.Fatal("first matching rule should win: /public/admin/x is public")
	}

	reversed := NewAccessPolicy([]AccessRule{
		{Pattern: "/public/admin/**", RequiresAuth: true},
		{Pattern: "/public/**", RequiresAuth: false},
	})
	if !reversed.RequiresAuth("/public/admin/x") {
		t.Fatal("admin rule listed first should protect /public/admin/x")
	}
	if reversed.RequiresAuth("/public/other") {
		t.Fatal("/public/other should stay public")
	}
}

func TestPolicyWildcardMatching(t *testing.T) {
	policy := NewAccessPolicy([]AccessRule{
		{Pattern: "/companies/**", RequiresAuth: false},
		{Pattern: "/health", RequiresAuth: false},
	})

	cases := []struct {
		path string
		want bool
	}{
		{"/companies", false},
		{"/companies/00126380", false},
		{"/companies/00126380/disclosures", false},
		{"/companiesx", true},
		{"/health", false},
		{"/health/ready", true},
		{"/favorites", true},
	}
	for _, tc := range cases {
		if got := policy.RequiresAuth(tc.path); got != tc.want {
			t.Errorf("RequiresAuth(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestDefaultPolicyProtectsFavorites(t *testing.T) {
	policy := DefaultAccessPolicy()

	public := []string{"/", "/health", "/health/ready", "/auth/login", "/companies/00126380", "/stocks/005930/chart", "/exchange-rates", "/news/search"}
	for _, path := range public {
		if policy.RequiresAuth(path) {
			t.Errorf("expected %q to be public", path)
		}
	}

	protected := []string{"/favorites", "/favorites/005930", "/favorites/005930/memo", "/anything-else"}
	for _, path := range protected {
		if !policy.RequiresAuth(path) {
			t.Errorf("expected %q to be protected", path)
		}
	}
}
