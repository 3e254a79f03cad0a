// Package call extracts structured action requests from free-form language
// model output.
//
// Model text arrives in many shapes: explicit markers (TOOL: name(args)),
// bracketed calls ([CALL: name(args)]), fenced code blocks, bare function
// calls, or embedded JSON objects, often interleaved with reasoning spans
// and conversational prose. The parser recognizes all of them, validates
// action names against an injectable vocabulary, and returns a ranked,
// deduplicated list of requests.
//
// Parsing is pure computation: it never blocks, never returns an error and
// never panics, whatever the input. A Parser is safe for concurrent use.
//
// Basic usage:
//
//	p := call.NewParser(call.DefaultVocabulary())
//	for _, req := range p.Parse(modelOutput) {
//	    fmt.Println(req.Name, req.Params, req.Confidence)
//	}
package call
