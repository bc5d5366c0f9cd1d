// Package keymap maps key presses to commands, per UI context, with user
// overrides layered on top of the defaults.
package keymap

// Binding ties a key to a command within a context. The "global" context
// is the fallback for keys no specific context claims.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Registry resolves key presses to commands.
type Registry struct {
	byContext map[string]map[string]string // context -> key -> command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byContext: make(map[string]map[string]string)}
}

// RegisterBinding adds or replaces a binding.
func (r *Registry) RegisterBinding(b Binding) {
	keys, ok := r.byContext[b.Context]
	if !ok {
		keys = make(map[string]string)
		r.byContext[b.Context] = keys
	}
	keys[b.Key] = b.Command
}

// Resolve returns the command bound to key in context, falling back to the
// global context when the specific context has no binding for it.
func (r *Registry) Resolve(context, key string) (string, bool) {
	if cmd, ok := r.byContext[context][key]; ok {
		return cmd, true
	}
	cmd, ok := r.byContext["global"][key]
	return cmd, ok
}

// BindingsFor returns every binding reachable from context, the context's
// own plus inherited globals. Context-local bindings shadow globals on the
// same key.
func (r *Registry) BindingsFor(context string) []Binding {
	seen := make(map[string]struct{})
	var out []Binding
	for key, cmd := range r.byContext[context] {
		seen[key] = struct{}{}
		out = append(out, Binding{Key: key, Command: cmd, Context: context})
	}
	if context != "global" {
		for key, cmd := range r.byContext["global"] {
			if _, ok := seen[key]; ok {
				continue
			}
			out = append(out, Binding{Key: key, Command: cmd, Context: "global"})
		}
	}
	return out
}

// ApplyOverrides rebinds commands to user-chosen keys. Override keys are
// "command" (applied in every context that binds the command) and values
// are the new key. The command's default key is released.
func (r *Registry) ApplyOverrides(overrides map[string]string) {
	for command, newKey := range overrides {
		for context, keys := range r.byContext {
			for key, cmd := range keys {
				if cmd == command && key != newKey {
					delete(keys, key)
					r.byContext[context][newKey] = command
				}
			}
		}
	}
}
