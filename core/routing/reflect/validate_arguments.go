package reflect

import (
	"fmt"

	"github.com/sbalogh/rttr/core/method"
	"github.com/sbalogh/rttr/core/types"
	"github.com/sbalogh/rttr/core/variant"
)

// Check validates the string arguments of the method called name without
// invoking it.
func (r *Router) Check(name string, args ...string) error {
	m, err := r.Lookup(name, len(args))
	if err != nil {
		return err
	}

	return ValidateArguments(m, args...)
}

// ValidateArguments validates string arguments against the parameters of m.
// Each argument is converted to its parameter type. If the converted value
// implements types.Checker or types.Validator, it is checked as well.
//
// The function returns an error if the number of arguments is not accepted by
// m, or if an argument cannot be converted or fails its own validation.
func ValidateArguments(m *method.Method, args ...string) error {
	if !m.Accepts(len(args)) {
		return fmt.Errorf(
			"%w: found %d but expected %d: validate %s",
			ErrIncorrectArgumentCount,
			len(args),
			m.Wrapper().Arity(),
			m.Name(),
		)
	}

	params := m.Parameters().Collect()
	for i, arg := range args {
		value, err := variant.Arg(arg).Convert(params[i].Type())
		if err != nil {
			return fmt.Errorf("%w: validate %s, argument %d", err, m.Name(), i)
		}

		iface := value.Interface()

		if checker, ok := iface.(types.Checker); ok {
			if err = checker.Check(); err != nil {
				return fmt.Errorf(
					"%w: '%s': validation failed: '%v': validate %s, argument %d",
					variant.ErrInvalidArgumentValue,
					arg,
					err.Error(),
					m.Name(),
					i,
				)
			}
		}

		if validator, ok := iface.(types.Validator); ok {
			if err = validator.Validate(); err != nil {
				return fmt.Errorf(
					"%w: '%s': validation failed: '%v': validate %s, argument %d",
					variant.ErrInvalidArgumentValue,
					arg,
					err.Error(),
					m.Name(),
					i,
				)
			}
		}
	}

	return nil
}
