// Package voxact turns free-form language-model output into validated action
// requests and runs model-generated scripts under the strongest process
// isolation the host offers.
//
// Two components, composed by the caller:
//   - call.Parser extracts ranked, deduplicated action requests from raw
//     model text, or the leftover prose to speak when no request is present.
//   - Executor runs an untrusted script body under firejail, bubblewrap or
//     plain process limits, bounded by memory, CPU time, wall clock and
//     output size, behind a static safety gate and with a bounded audit
//     trail of every decision.
//
// Key features:
//   - Ordered multi-format call extraction with confidence ranking
//   - Backend probing once at construction, no process-global state
//   - Resource limits enforced on every backend
//   - Failures surface as result fields, never as panics across the API
//
// Basic usage:
//
//	ex, err := voxact.New(voxact.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ex.Cleanup()
//
//	res := ex.Execute(ctx, "echo hello", "bash")
//	fmt.Println(res.Success, res.Stdout)
package voxact
