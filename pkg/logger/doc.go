// Package logger builds slog loggers for otpkit binaries and libraries.
//
// New creates a *slog.Logger configured by Option functions: output format
// (text or json), minimum level, output writer, static attributes and values
// copied from context.Context on every record. WithEnvironment selects
// defaults for development (text, debug) or production (json, info).
//
// Helper constructors in attr.go (Error, Component, Window, Issuer, ...) keep
// attribute keys consistent. Helpers that receive an empty value return an
// empty slog.Attr, which slog drops:
//
//	log.Info("code verified", logger.Issuer(rec.Issuer), logger.Error(err))
//
// Secrets and codes must never be passed to a logger.
package logger
