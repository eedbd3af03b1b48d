// Package answers holds the operator responses gathered by the interactive
// migration flow.
//
// Responses are grouped into the origin, destination, and global domains and are
// stored as raw strings; empty values mean "use the default". The package also
// owns the yes/no gate policy and the comma-separated collection scope parser
// shared by the prompt engine, the command synthesizer, and the orchestrator.
package answers
