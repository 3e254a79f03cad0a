package voxact

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// languageSpec describes how to materialize and run one script language.
type languageSpec struct {
	ext         string
	interpreter string

	// shebang is injected when the script lacks one; empty disables
	// injection for languages whose interpreters ignore it anyway.
	shebang string
}

// languages is the fixed language table. Extend only by adding entries;
// unknown languages fall back to bash.
var languages = map[string]languageSpec{
	"bash":       {ext: ".sh", interpreter: "/bin/bash", shebang: "#!/bin/bash"},
	"sh":         {ext: ".sh", interpreter: "/bin/sh", shebang: "#!/bin/sh"},
	"shell":      {ext: ".sh", interpreter: "/bin/bash", shebang: "#!/bin/bash"},
	"python":     {ext: ".py", interpreter: "python3", shebang: "#!/usr/bin/env python3"},
	"python3":    {ext: ".py", interpreter: "python3", shebang: "#!/usr/bin/env python3"},
	"javascript": {ext: ".js", interpreter: "node"},
	"node":       {ext: ".js", interpreter: "node"},
	"perl":       {ext: ".pl", interpreter: "perl"},
	"ruby":       {ext: ".rb", interpreter: "ruby"},
}

// lookupLanguage resolves a language tag, case-insensitively.
func lookupLanguage(lang string) languageSpec {
	if spec, ok := languages[strings.ToLower(strings.TrimSpace(lang))]; ok {
		return spec
	}
	return languages["bash"]
}

// materializeScript writes the script to a uniquely named executable file
// inside dir, injecting the language's shebang when the script has none.
// The caller must remove the file on every exit path.
func materializeScript(dir, script string, spec languageSpec) (string, error) {
	path := filepath.Join(dir, "script-"+uuid.NewString()+spec.ext)

	var b strings.Builder
	if spec.shebang != "" && !strings.HasPrefix(script, "#!") {
		b.WriteString(spec.shebang)
		b.WriteByte('\n')
	}
	b.WriteString(script)

	if err := os.WriteFile(path, []byte(b.String()), 0o755); err != nil {
		return "", err
	}
	return path, nil
}
