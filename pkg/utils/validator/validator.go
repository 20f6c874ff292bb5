package validator

import "github.com/oldmonad/readerr/pkg/strategy"

func NewValidator() Validator {
	return &ValidatorOptions{
		strategies: strategy.All,
	}
}

type ValidatorOptions struct {
	strategies []strategy.Name
}

type Validator interface {
	ValidateStrategies(requested []string) ([]strategy.Name, error)
	ValidatePath(path string) (string, error)
}

func NewValidatorOptionsForTesting(strategies []strategy.Name) *ValidatorOptions {
	return &ValidatorOptions{strategies: strategies}
}
