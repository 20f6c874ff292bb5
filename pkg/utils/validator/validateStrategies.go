package validator

import (
	"strings"

	"github.com/oldmonad/readerr/pkg/errors"
	"github.com/oldmonad/readerr/pkg/strategy"
)

// ValidateStrategies resolves the requested strategy names.
// Blank entries, such as the one a trailing comma leaves, are ignored, and a
// request with no names left selects every strategy. The result is always in
// run order with duplicates removed, whatever order the names were requested in.
func (v *ValidatorOptions) ValidateStrategies(requested []string) ([]strategy.Name, error) {
	wanted := make(map[strategy.Name]bool, len(requested))
	var unknown []string
	for _, r := range requested {
		name := strategy.Name(strings.ToLower(strings.TrimSpace(r)))
		if name == "" {
			continue
		}
		if !v.known(name) {
			unknown = append(unknown, r)
			continue
		}
		wanted[name] = true
	}

	if len(unknown) > 0 {
		return nil, errors.NewUnknownStrategiesError(unknown, v.StrategyNames())
	}
	if len(wanted) == 0 {
		return v.AllStrategies(), nil
	}

	selected := make([]strategy.Name, 0, len(wanted))
	for _, s := range v.strategies {
		if wanted[s] {
			selected = append(selected, s)
		}
	}
	return selected, nil
}

// AllStrategies returns every strategy in run order.
func (v *ValidatorOptions) AllStrategies() []strategy.Name {
	out := make([]strategy.Name, len(v.strategies))
	copy(out, v.strategies)
	return out
}

// StrategyNames returns every strategy name in run order.
func (v *ValidatorOptions) StrategyNames() []string {
	names := make([]string, 0, len(v.strategies))
	for _, s := range v.strategies {
		names = append(names, string(s))
	}
	return names
}

func (v *ValidatorOptions) known(name strategy.Name) bool {
	for _, s := range v.strategies {
		if s == name {
			return true
		}
	}
	return false
}
