package boson

import (
	"fmt"
	"sync"
)

// Registry maps command names (and aliases) to their wrapped runners.
// Registration is explicit and declarative; the registry never
// discovers commands itself. A read-write lock keeps concurrent
// dispatch safe against late registration.
type Registry struct {
	mu      sync.RWMutex
	runners map[string]*Runner
	aliases map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		runners: make(map[string]*Runner),
		aliases: make(map[string]string),
	}
}

// Register wraps the descriptor and callable and stores the runner
// under the command's name and, when present, its alias.
func (r *Registry) Register(d *CommandDescriptor, fn Callable) (*Runner, error) {
	if d == nil || d.Name == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.runners[d.Name]; exists {
		return nil, fmt.Errorf("command %q already defined", d.Name)
	}
	if d.Alias != "" {
		if _, exists := r.aliases[d.Alias]; exists {
			return nil, fmt.Errorf("alias %q already defined", d.Alias)
		}
		if _, exists := r.runners[d.Alias]; exists {
			return nil, fmt.Errorf("alias %q collides with command %q", d.Alias, d.Alias)
		}
	}
	runner := Wrap(d, fn)
	r.runners[d.Name] = runner
	if d.Alias != "" {
		r.aliases[d.Alias] = d.Name
	}
	return runner, nil
}

// Lookup resolves a command name or alias.
func (r *Registry) Lookup(name string) (*Runner, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if runner, ok := r.runners[name]; ok {
		return runner, true
	}
	if canonical, ok := r.aliases[name]; ok {
		runner, ok := r.runners[canonical]
		return runner, ok
	}
	return nil, false
}

// Names returns the registered command names, unordered.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.runners))
	for name := range r.runners {
		names = append(names, name)
	}
	return names
}

// Invoke dispatches by name in the default context.
func (r *Registry) Invoke(name string, args ...any) (any, error) {
	return r.InvokeWith(defaultInvokeContext(), name, args...)
}

// InvokeWith dispatches by name under an explicit context.
func (r *Registry) InvokeWith(ctx InvokeContext, name string, args ...any) (any, error) {
	runner, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown command %q", name)
	}
	return runner.InvokeWith(ctx, args...)
}
