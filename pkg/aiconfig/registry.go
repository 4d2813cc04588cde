package aiconfig

import (
	"fmt"

	"ai-support-be/internal/config"
	"ai-support-be/internal/constant"
)

// Profile is one immutable AI configuration a session can select.
type Profile struct {
	Key             string
	Name            string
	Provider        string
	Model           string
	SystemPromptRef string
}

// Registry maps configuration keys to profiles. Built once at startup,
// read-only afterwards, so concurrent reads need no locking.
type Registry struct {
	profiles map[string]*Profile
	order    []string
}

func NewRegistry(configs []config.ProfileConfig) *Registry {
	r := &Registry{profiles: make(map[string]*Profile, len(configs))}
	for _, c := range configs {
		if c.Key == "" {
			continue
		}
		r.profiles[c.Key] = &Profile{
			Key:             c.Key,
			Name:            c.Name,
			Provider:        c.Provider,
			Model:           c.Model,
			SystemPromptRef: c.SystemPromptRef,
		}
		r.order = append(r.order, c.Key)
	}
	return r
}

// Validate checks the invariant every dispatch relies on: the default
// profile must exist. Called at bootstrap to fail fast.
func (r *Registry) Validate() error {
	if _, ok := r.profiles[constant.DefaultConfigurationKey]; !ok {
		return fmt.Errorf("ai profile table must contain a '%s' entry", constant.DefaultConfigurationKey)
	}
	return nil
}

// Resolve returns the profile for key, falling back to the default profile
// when key is unknown. The second return reports whether a fallback
// happened, so callers can log it. Returns nil when even the default
// profile is missing.
func (r *Registry) Resolve(key string) (*Profile, bool) {
	if p, ok := r.profiles[key]; ok {
		return p, false
	}
	return r.profiles[constant.DefaultConfigurationKey], true
}

// Default returns the default profile, or nil when it is not configured.
func (r *Registry) Default() *Profile {
	return r.profiles[constant.DefaultConfigurationKey]
}

// Has reports whether key is a known profile key.
func (r *Registry) Has(key string) bool {
	_, ok := r.profiles[key]
	return ok
}

// All returns the profiles in declaration order, for the session
// creation dropdown.
func (r *Registry) All() []*Profile {
	out := make([]*Profile, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.profiles[key])
	}
	return out
}
