package classifier

// Match is the outcome of a classification: which rule fired, on which
// keyword, and the response to send back. Keyword is empty for the fallback.
type Match struct {
	Rule     string
	Keyword  string
	Response Response
}

// Classifier evaluates an ordered rule list against normalized text.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	rules    []Rule
	fallback Response
}

// New creates a Classifier over the built-in catalog.
func New() *Classifier {
	return &Classifier{rules: defaultRules, fallback: defaultFallback}
}

// NewWithRules creates a Classifier over a custom catalog. The rules are
// copied, so later changes to the argument do not affect the Classifier.
func NewWithRules(rules []Rule, fallback Response) *Classifier {
	return &Classifier{rules: cloneRules(rules), fallback: fallback.clone()}
}

// Match normalizes message and returns the first rule whose keyword set
// matches, or the fallback.
func (c *Classifier) Match(message string) Match {
	text := Normalize(message)
	for _, r := range c.rules {
		if kw, ok := ContainsAny(text, r.Keywords); ok {
			return Match{Rule: r.Name, Keyword: kw, Response: r.Response.clone()}
		}
	}
	return Match{Rule: RuleFallback, Response: c.fallback.clone()}
}

// Classify returns the response for message. It never fails; empty or
// unmatched input yields the fallback.
func (c *Classifier) Classify(message string) Response {
	return c.Match(message).Response
}

// Rules returns a copy of the classifier's catalog in evaluation order.
func (c *Classifier) Rules() []Rule {
	return cloneRules(c.rules)
}

var std = New()

// Classify classifies message against the built-in catalog.
func Classify(message string) Response {
	return std.Classify(message)
}
