// Package synthesis turns recorded answers into argument lists for the export
// and import tools and names the temporary artifact that links them.
//
// The package never touches the filesystem or launches processes: it only
// applies the default substitution rules (loopback host, standard port,
// destination values falling back to origin values) and validates the
// mandatory origin scope before the first export runs.
package synthesis
