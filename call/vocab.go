package call

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vocabulary is the closed set of action names a parser accepts.
// Membership checks are case-insensitive. A Vocabulary is immutable after
// construction and safe for concurrent use.
type Vocabulary struct {
	names map[string]struct{}
}

// NewVocabulary builds a vocabulary from the given action names. Empty
// entries are dropped; names are normalized to lower case.
func NewVocabulary(names ...string) *Vocabulary {
	v := &Vocabulary{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			v.names[n] = struct{}{}
		}
	}
	return v
}

// Contains reports whether name is in the vocabulary, ignoring case.
func (v *Vocabulary) Contains(name string) bool {
	_, ok := v.names[strings.ToLower(name)]
	return ok
}

// Len returns the number of action names in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.names)
}

// Names returns the action names in sorted order.
func (v *Vocabulary) Names() []string {
	out := make([]string, 0, len(v.names))
	for n := range v.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// defaultActions is the built-in action-name set of the voice assistant.
var defaultActions = []string{
	// App control
	"open_app", "close_app", "run_script",
	// System
	"get_system_info", "get_processes", "execute_command",
	// Filesystem
	"list_files", "read_file", "search_files",
	// Web
	"search_web", "fetch_url", "open_website", "web_search",
	// Script generation
	"generate_and_run_script",
	// Media control
	"control_media", "get_now_playing",
	// Conversation
	"answer_question", "explain_concept", "have_conversation",
	// User context
	"set_user_preference", "remember_user_info", "set_work_context",
	// System control
	"control_brightness", "power_management", "control_system_volume",
}

// DefaultVocabulary returns a vocabulary containing the built-in action names.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(defaultActions...)
}

// vocabularyFile mirrors the on-disk YAML layout.
type vocabularyFile struct {
	Tools []string `yaml:"tools"`
}

// LoadVocabulary reads a YAML vocabulary file of the form:
//
//	tools:
//	  - open_app
//	  - search_web
//
// so deployments can extend the allow-set without recompiling.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("call: read vocabulary: %w", err)
	}
	var f vocabularyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("call: parse vocabulary: %w", err)
	}
	if len(f.Tools) == 0 {
		return nil, fmt.Errorf("call: vocabulary %q lists no tools", path)
	}
	return NewVocabulary(f.Tools...), nil
}
