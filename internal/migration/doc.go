// Package migration drives an interactive collection migration: it gathers
// answers from the operator, exports every requested collection with the
// export tool, optionally imports the exported artifacts with the import tool,
// and removes the artifacts unless the operator keeps them as a backup.
package migration
