package call

import (
	"fmt"
	"sort"
	"strings"
)

// Request is a single structured action request extracted from model text.
type Request struct {
	// Name is the action name. It always belongs to the parser's vocabulary,
	// preserved in the casing the model produced.
	Name string

	// Params maps parameter names to typed values. Values are string, int64,
	// float64, bool or nil; anything that does not match a known literal
	// form degrades to a plain string.
	Params map[string]any

	// RawMatch is the exact substring the request was extracted from.
	RawMatch string

	// Confidence estimates how likely the matched span is a genuine action
	// request rather than an accidental one, in [0, 1]. More specific
	// syntaxes score higher.
	Confidence float64
}

// signature builds the dedup key: lowercased name plus sorted param items.
// Two differently formatted calls to the same action with identical
// parameters share a signature. Values carry their dynamic type so the
// integer 1 and the string "1" stay distinct.
func (r *Request) signature() string {
	keys := make([]string, 0, len(r.Params))
	for k := range r.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(strings.ToLower(r.Name))
	for _, k := range keys {
		fmt.Fprintf(&b, "|%s=%T:%v", k, r.Params[k], r.Params[k])
	}
	return b.String()
}
