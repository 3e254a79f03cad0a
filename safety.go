package voxact

import "strings"

// blockRule is a single safety pre-filter. Rules are evaluated in order and
// the first match rejects the script with a human-readable reason. The gate
// is a cheap static check, not the containment mechanism: the isolation
// backend is the actual security boundary.
type blockRule struct {
	// name is a short, unique identifier for this rule (e.g. "blocklist").
	name string

	// match inspects the script. It receives both the original text and a
	// lowercased copy, and returns a reason and true when the rule rejects.
	match func(script, lower string) (string, bool)
}

// blockedPatterns is the fixed blocklist of command idioms that must never
// reach a backend, matched case-insensitively as substrings. The list is
// part of the compatibility surface; extend it, do not reorder it.
var blockedPatterns = []string{
	"rm -rf /",
	"rm -rf ~",
	"rm -rf /*",
	":(){:|:&};:", // fork bomb
	"> /dev/sd",
	"mkfs.",
	"dd if=",
	"> /dev/null 2>&1 &", // background without control
	"chmod -R 777 /",
	"chown -R",
	"| sh",
	"| bash",
	"curl | bash",
	"wget | bash",
	"eval",
	"sudo rm",
	"sudo dd",
	"sudo mkfs",
}

// sensitiveDirs are system paths a script must never redirect output into.
var sensitiveDirs = []string{"/dev/", "/etc/", "/bin/", "/sbin/", "/usr/"}

// fetchTokens and pipeTokens drive the network-exfiltration heuristic: a
// fetch command co-occurring with a pipe or evaluation token is rejected.
// Keyword co-occurrence is intentionally coarse; it will over-block benign
// pipelines and under-block disguised exfiltration, and stays that way by
// product decision. Tightening it is not a substitute for the backend.
var (
	fetchTokens = []string{"curl", "wget", "nc", "netcat"}
	pipeTokens  = []string{"@", "|", "bash", "sh", "eval"}
)

// safetyRules returns the built-in rules in evaluation order.
func safetyRules() []blockRule {
	return []blockRule{
		blocklistRule(),
		redirectionRule(),
		exfiltrationRule(),
	}
}

func blocklistRule() blockRule {
	return blockRule{
		name: "blocklist",
		match: func(_, lower string) (string, bool) {
			for _, p := range blockedPatterns {
				if strings.Contains(lower, strings.ToLower(p)) {
					return "blocked pattern detected: " + p, true
				}
			}
			return "", false
		},
	}
}

func redirectionRule() blockRule {
	return blockRule{
		name: "redirection",
		match: func(script, _ string) (string, bool) {
			if !strings.Contains(script, ">") {
				return "", false
			}
			for _, dir := range sensitiveDirs {
				if strings.Contains(script, dir) {
					return "dangerous file redirection detected", true
				}
			}
			return "", false
		},
	}
}

func exfiltrationRule() blockRule {
	return blockRule{
		name: "exfiltration",
		match: func(_, lower string) (string, bool) {
			fetch := false
			for _, tok := range fetchTokens {
				if strings.Contains(lower, tok) {
					fetch = true
					break
				}
			}
			if !fetch {
				return "", false
			}
			for _, tok := range pipeTokens {
				if strings.Contains(lower, tok) {
					return "potential command injection via network", true
				}
			}
			return "", false
		},
	}
}

// IsSafe runs the static safety gate over script. It returns false and a
// human-readable reason when any rule rejects; the reason names the matched
// pattern so the caller can voice it.
func (e *Executor) IsSafe(script string) (bool, string) {
	lower := strings.ToLower(script)
	for _, r := range e.rules {
		if reason, ok := r.match(script, lower); ok {
			return false, reason
		}
	}
	return true, ""
}
