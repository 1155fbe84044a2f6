// Package vendors resolves DID vendor integrations by name.
package vendors

import (
	"sort"
	"strings"

	"telco-billing/internal/core/ports"
)

// Registry implements ports.VendorRegistry. Names match case-insensitively.
type Registry struct {
	integrations map[string]ports.VendorIntegration
}

// NewRegistry registers the given integrations under their Name().
func NewRegistry(integrations ...ports.VendorIntegration) *Registry {
	r := &Registry{integrations: make(map[string]ports.VendorIntegration, len(integrations))}
	for _, i := range integrations {
		r.Register(i)
	}
	return r
}

// Register adds or replaces an integration.
func (r *Registry) Register(i ports.VendorIntegration) {
	r.integrations[strings.ToLower(i.Name())] = i
}

// Lookup returns the integration for a vendor name.
func (r *Registry) Lookup(name string) (ports.VendorIntegration, bool) {
	i, ok := r.integrations[strings.ToLower(strings.TrimSpace(name))]
	return i, ok
}

// Names lists the registered integrations.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.integrations))
	for _, i := range r.integrations {
		names = append(names, i.Name())
	}
	sort.Strings(names)
	return names
}
