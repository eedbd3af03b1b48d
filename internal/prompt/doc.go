// Package prompt drives the sequential question flow that collects migration
// answers from an operator.
//
// Engine walks an ordered list of questions exactly once, skipping destination
// questions when the operator declined the import, resolving deferred prompt
// text against the answers gathered so far, and recording every raw response in
// an answers.AnswerSet.
package prompt
