// Package execshell provides structured helpers for invoking the external
// export and import tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution, and notifies CommandEventObserver implementations
// about every command lifecycle stage so callers can surface progress to the
// operator. Password arguments are masked in every rendered message.
package execshell
