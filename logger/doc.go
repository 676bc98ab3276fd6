// Package logger provides structured logging for scribekit built on zerolog.
//
// A single global logger is initialized from config at startup; packages
// obtain component-tagged children via logger.Get(name).
//
//	logger.Init(cfg.Logging)
//	log := logger.Get("pipeline")
//	log.Info("turn transcribed", logger.Fields("speaker", "SPEAKER_00", "duration_ms", 840))
package logger
