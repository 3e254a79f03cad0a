package voxact

import "testing"

func TestMergeCallOptions(t *testing.T) {
	co := mergeCallOptions()
	if co.workingDir != "" || len(co.env) != 0 {
		t.Errorf("empty merge = %+v, want zero options", co)
	}

	co = mergeCallOptions(WithWorkingDir("/srv"), WithEnv("A=1", "B=2"), WithEnv("C=3"))
	if co.workingDir != "/srv" {
		t.Errorf("workingDir = %q, want /srv", co.workingDir)
	}
	want := []string{"A=1", "B=2", "C=3"}
	if len(co.env) != len(want) {
		t.Fatalf("env = %v, want %v", co.env, want)
	}
	for i := range want {
		if co.env[i] != want[i] {
			t.Errorf("env[%d] = %q, want %q", i, co.env[i], want[i])
		}
	}
}

func TestWithEnvCopiesSlice(t *testing.T) {
	env := []string{"A=1"}
	opt := WithEnv(env...)
	env[0] = "A=mutated"

	co := mergeCallOptions(opt)
	if co.env[0] != "A=1" {
		t.Errorf("env[0] = %q, want the value captured at option creation", co.env[0])
	}
}
