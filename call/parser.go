package call

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// embeddedConfidence is the fixed confidence assigned to requests recovered
// from embedded JSON blocks.
const embeddedConfidence = 0.8

// pattern couples an extraction regexp with its specificity rank. The order
// of callPatterns IS the confidence-ranking mechanism: lower index means a
// more specific syntax and a higher score, so the table must stay explicit
// and ordered.
type pattern struct {
	re   *regexp.Regexp
	rank int

	// bare marks the catch-all function-call syntax, which is inherently
	// noisy: names outside the vocabulary are dropped silently instead of
	// being logged.
	bare bool
}

var callPatterns = []pattern{
	// Explicit marker: TOOL: name(args)
	{re: regexp.MustCompile(`(?i)TOOL:\s*(\w+)\s*\(([^)]*)\)`), rank: 0},
	// Bracketed call: [CALL: name(args)]
	{re: regexp.MustCompile(`(?i)\[CALL:\s*(\w+)\s*\(([^)]*)\)\]`), rank: 1},
	// Fenced tagged call: ```tool name(args)```
	{re: regexp.MustCompile("(?i)```tool\\s+(\\w+)\\s*\\(([^)]*)\\)```"), rank: 2},
	// Bare call: name(args) with no marker at all.
	{re: regexp.MustCompile(`(?i)\b(\w+)\s*\(([^)]*)\)`), rank: 3, bare: true},
}

// thinkingSpans are the reasoning-block variants models emit. They are
// stripped before any other processing so their contents are never mistaken
// for action text.
var thinkingSpans = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<think>.*?</think>`),
	regexp.MustCompile(`(?is)<thinking>.*?</thinking>`),
	regexp.MustCompile(`(?is)\[thinking\].*?\[/thinking\]`),
	regexp.MustCompile(`(?is)<reasoning>.*?</reasoning>`),
}

// jsonBlockRe matches an embedded JSON object with at most one level of
// nesting, enough for a tool key plus a flat params object. Whether the
// object actually names a tool is decided after unmarshalling.
var jsonBlockRe = regexp.MustCompile(`\{(?:[^{}]|\{[^{}]*\})*\}`)

// Parser extracts action requests from raw model output. Parsing is pure
// computation over the (immutable) vocabulary, so a Parser is safe for
// concurrent use without coordination.
type Parser struct {
	vocab  *Vocabulary
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used for dropped-candidate diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewParser creates a Parser that accepts the given vocabulary. A nil
// vocabulary falls back to DefaultVocabulary.
func NewParser(vocab *Vocabulary, opts ...Option) *Parser {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	p := &Parser{vocab: vocab, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts every action request from text, ordered by descending
// confidence (stable on ties) and deduplicated by name plus parameters.
// Text with no recognizable pattern yields an empty result: callers must
// treat that as conversation, not as an action. Parse never panics and
// never returns an error, whatever the input.
func (p *Parser) Parse(text string) []Request {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	cleaned := clean(text)

	var out []Request
	seen := make(map[string]struct{})

	for _, pat := range callPatterns {
		for _, m := range pat.re.FindAllStringSubmatch(cleaned, -1) {
			name, rawArgs := m[1], m[2]
			if !p.vocab.Contains(name) {
				if !pat.bare {
					p.logger.Debug("dropping call with unknown action name", "name", name)
				}
				continue
			}
			req := Request{
				Name:       name,
				Params:     parseParams(rawArgs),
				RawMatch:   m[0],
				Confidence: rankConfidence(pat.rank),
			}
			sig := req.signature()
			if _, dup := seen[sig]; dup {
				continue
			}
			seen[sig] = struct{}{}
			out = append(out, req)
		}
	}

	for _, req := range p.parseEmbedded(cleaned) {
		sig := req.signature()
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, req)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

// ParseOne returns the highest-confidence request in text, if any.
func (p *Parser) ParseOne(text string) (Request, bool) {
	reqs := p.Parse(text)
	if len(reqs) == 0 {
		return Request{}, false
	}
	return reqs[0], true
}

// HasCall is a cheap pre-check for skipping a full Parse when text clearly
// contains no action request: it looks for a marker substring or any
// vocabulary name immediately followed by an opening parenthesis.
func (p *Parser) HasCall(text string) bool {
	cleaned := clean(text)
	if strings.Contains(cleaned, "TOOL:") || strings.Contains(cleaned, "CALL:") {
		return true
	}

	lower := strings.ToLower(cleaned)
	for name := range p.vocab.names {
		start := 0
		for {
			i := strings.Index(lower[start:], name)
			if i < 0 {
				break
			}
			pos := start + i
			end := pos + len(name)
			if pos > 0 && isWordByte(lower[pos-1]) {
				start = pos + 1
				continue
			}
			j := end
			for j < len(lower) && (lower[j] == ' ' || lower[j] == '\t') {
				j++
			}
			if j < len(lower) && lower[j] == '(' {
				return true
			}
			start = end
		}
	}
	return false
}

// parseEmbedded recovers requests from embedded JSON blocks carrying a
// tool/name/function key plus a params/parameters/args object.
func (p *Parser) parseEmbedded(cleaned string) []Request {
	var out []Request
	for _, raw := range jsonBlockRe.FindAllString(cleaned, -1) {
		var obj map[string]any
		if err := json.Unmarshal([]byte(raw), &obj); err != nil {
			continue
		}
		name := firstString(obj, "tool", "name", "function")
		if name == "" || !p.vocab.Contains(name) {
			continue
		}
		out = append(out, Request{
			Name:       name,
			Params:     firstObject(obj, "params", "parameters", "args"),
			RawMatch:   raw,
			Confidence: embeddedConfidence,
		})
	}
	return out
}

// clean strips thinking spans and collapses all whitespace to single spaces,
// so the extraction patterns see one normalized line.
func clean(text string) string {
	for _, re := range thinkingSpans {
		text = re.ReplaceAllString(text, "")
	}
	return strings.Join(strings.Fields(text), " ")
}

// rankConfidence maps a pattern rank to its confidence score, clamped to [0, 1].
func rankConfidence(rank int) float64 {
	c := 1.0 - 0.1*float64(rank)
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

func firstString(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func firstObject(obj map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		if m, ok := obj[k].(map[string]any); ok {
			return m
		}
	}
	return map[string]any{}
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// defaultParser caches the parser used by the package-level convenience
// functions. It is stateless and immutable, so one instance is enough.
var (
	defaultParserOnce sync.Once
	defaultParserInst *Parser
)

func defaultParser() *Parser {
	defaultParserOnce.Do(func() {
		defaultParserInst = NewParser(DefaultVocabulary())
	})
	return defaultParserInst
}

// Parse extracts action requests from text using the default vocabulary.
func Parse(text string) []Request {
	return defaultParser().Parse(text)
}

// ParseOne returns the best action request in text using the default
// vocabulary, if any.
func ParseOne(text string) (Request, bool) {
	return defaultParser().ParseOne(text)
}
