package auth

import "strings"

// AccessRule classifies one path pattern. A pattern is either a literal
// path or ends in "/**", which covers the path itself and everything
// under it.
type AccessRule struct {
	Pattern      string
	RequiresAuth bool
}

// AccessPolicy is an immutable, ordered rule table consulted with
// first-match-wins semantics. Paths matching no rule require
// authentication. The table is built once at startup and never mutated,
// so concurrent reads need no synchronization.
type AccessPolicy struct {
	rules []AccessRule
}

// NewAccessPolicy copies the rules into a policy. Order matters: the
// first matching rule decides.
func NewAccessPolicy(rules []AccessRule) *AccessPolicy {
	owned := make([]AccessRule, len(rules))
	copy(owned, rules)
	return &AccessPolicy{rules: owned}
}

// DefaultAccessPolicy classifies the service's routes: auth, health and
// market-data endpoints are public, favorites and memos (and anything
// unlisted) require a token.
func DefaultAccessPolicy() *AccessPolicy {
	return NewAccessPolicy([]AccessRule{
		{Pattern: "/", RequiresAuth: false},
		{Pattern: "/health/**", RequiresAuth: false},
		{Pattern: "/auth/**", RequiresAuth: false},
		{Pattern: "/companies/**", RequiresAuth: false},
		{Pattern: "/stocks/**", RequiresAuth: false},
		{Pattern: "/exchange-rates/**", RequiresAuth: false},
		{Pattern: "/economy/**", RequiresAuth: false},
		{Pattern: "/news/**", RequiresAuth: false},
	})
}

// RequiresAuth reports whether the path needs an authenticated caller.
func (p *AccessPolicy) RequiresAuth(path string) bool {
	for _, rule := range p.rules {
		if matchPattern(rule.Pattern, path) {
			return rule.RequiresAuth
		}
	}
	return true
}

func matchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == pattern
}
