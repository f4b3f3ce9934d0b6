package grammar

// Validate checks the graph invariants: a config with a display name, a root
// state, and no rule referencing a state missing from the map. A malformed
// state reference is a fatal input error, never silently skipped.
func (g *Graph) Validate() error {
	if g.Config == nil || g.Config.Name == "" {
		return noConfigError()
	}
	if _, ok := g.States[RootState]; !ok {
		return noRootStateError(g.Config.Name)
	}
	for name, rules := range g.States {
		for _, r := range rules {
			target := ""
			switch rule := r.(type) {
			case NestedRule:
				target = rule.State
			case IncludeRule:
				target = rule.State
			}
			if target == "" {
				continue
			}
			if _, ok := g.States[target]; !ok {
				return unknownStateError(g.Config.Name, name, target)
			}
		}
	}
	return nil
}

// MustValid returns g or panics if it violates the graph invariants.
// Intended for package-level language definitions.
func MustValid(g *Graph) *Graph {
	if err := g.Validate(); err != nil {
		panic(err)
	}
	return g
}
