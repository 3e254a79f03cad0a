package call

import (
	"regexp"
	"strings"
)

// fenceRe matches stray markdown fence markers left behind once call
// patterns are removed.
var fenceRe = regexp.MustCompile("```\\w*")

// fillerRes match throwaway acknowledgements anchored at the start of the
// remainder. A response that is nothing but filler is not worth speaking.
var fillerRes = []*regexp.Regexp{
	regexp.MustCompile(`^okay[,.]?\s*$`),
	regexp.MustCompile(`^sure[,.]?\s*$`),
	regexp.MustCompile(`^alright[,.]?\s*$`),
	regexp.MustCompile(`^let me\b`),
	regexp.MustCompile(`^i will\b`),
	regexp.MustCompile(`^i'll\b`),
}

// DirectResponse extracts the prose that remains once every call pattern and
// embedded JSON block is removed from text: the part meant to be spoken to
// the user. It reports false when nothing remains, or when the remainder is
// only a filler acknowledgement.
func (p *Parser) DirectResponse(text string) (string, bool) {
	cleaned := clean(text)

	for _, pat := range callPatterns {
		cleaned = pat.re.ReplaceAllString(cleaned, "")
	}
	cleaned = jsonBlockRe.ReplaceAllString(cleaned, "")
	cleaned = fenceRe.ReplaceAllString(cleaned, "")

	cleaned = strings.TrimSpace(strings.Join(strings.Fields(cleaned), " "))
	if cleaned == "" {
		return "", false
	}

	lower := strings.ToLower(cleaned)
	for _, re := range fillerRes {
		if re.MatchString(lower) {
			return "", false
		}
	}
	return cleaned, true
}

// DirectResponse extracts the speakable remainder of text using the default
// vocabulary.
func DirectResponse(text string) (string, bool) {
	return defaultParser().DirectResponse(text)
}
