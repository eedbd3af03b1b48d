// Package utils exposes the CLI plumbing shared by mongo-migrate commands.
//
// ConfigurationLoader layers the embedded defaults, an optional configuration
// file, and MONGOMIGRATE_ environment variables through Viper. LoggerFactory
// builds zap loggers that write to standard error, leaving standard output to
// the operator dialogue, and FlushingWriter keeps prompts visible before input
// is read.
package utils
