package classifier

import (
	"slices"
	"strings"
)

// Response is a canned troubleshooting answer. It carries either a Body or
// a checklist of Steps with an optional Tip.
type Response struct {
	Title string   `json:"title"`
	Body  string   `json:"body,omitempty"`
	Steps []string `json:"steps,omitempty"`
	Tip   string   `json:"tip,omitempty"`
}

// HasSteps reports whether the response is a checklist.
func (r Response) HasSteps() bool {
	return len(r.Steps) > 0
}

// Text renders the response as flat text:
//
//	{title}\n\n- {step1}\n- {step2}\n\nTip: {tip}
//
// for checklists, or {title}\n\n{body} otherwise. The result is trimmed.
func (r Response) Text() string {
	var b strings.Builder
	b.WriteString(r.Title)
	b.WriteString("\n\n")
	if r.HasSteps() {
		b.WriteString("- ")
		b.WriteString(strings.Join(r.Steps, "\n- "))
		b.WriteString("\n\nTip: ")
		b.WriteString(r.Tip)
	} else {
		b.WriteString(r.Body)
	}
	return strings.TrimSpace(b.String())
}

func (r Response) clone() Response {
	r.Steps = slices.Clone(r.Steps)
	return r
}

// Rule pairs a keyword set with the response returned when any keyword matches.
type Rule struct {
	Name     string
	Keywords []string
	Response Response
}

func cloneRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{
			Name:     r.Name,
			Keywords: slices.Clone(r.Keywords),
			Response: r.Response.clone(),
		}
	}
	return out
}
