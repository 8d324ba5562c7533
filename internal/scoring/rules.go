package scoring

// Rule pairs a predicate result with the message emitted when it holds.
type Rule struct {
	When    bool
	Message string
}

// When is shorthand for building a Rule inline.
func When(cond bool, message string) Rule {
	return Rule{When: cond, Message: message}
}

// Collect returns the messages of every matching rule in the order given.
// The result is never nil so JSON output renders an empty list.
func Collect(rules ...Rule) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.When {
			out = append(out, r.Message)
		}
	}
	return out
}
