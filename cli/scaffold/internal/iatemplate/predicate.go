package iatemplate

// Predicate reports whether a template applies to the given context.
type Predicate func(ctx interface{}) bool

// anyOf combines predicates into one returning true if at least one
// predicate matches. Short-circuits on the first match.
func anyOf(predicates []Predicate) Predicate {
	return func(ctx interface{}) bool {
		for _, predicate := range predicates {
			if predicate(ctx) {
				return true
			}
		}
		return false
	}
}

// NewPredicate normalizes an allow value to a single predicate. The value
// is either a single predicate function or an ordered list of predicate
// functions, a list matching if any element matches. Anything else is an
// InvalidConfigurationError.
func NewPredicate(allow interface{}) (Predicate, error) {
	switch value := allow.(type) {
	case Predicate:
		return value, nil
	case func(ctx interface{}) bool:
		return Predicate(value), nil
	case []Predicate:
		return anyOf(value), nil
	case []func(ctx interface{}) bool:
		predicates := make([]Predicate, len(value))
		for i, fn := range value {
			predicates[i] = Predicate(fn)
		}
		return anyOf(predicates), nil
	}
	return nil, &InvalidConfigurationError{
		Reason: "allow value must be a predicate function or a list of predicate functions",
	}
}
