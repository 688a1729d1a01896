// Package config loads calculator settings from the environment.
//
// Every setting has a default, so an empty environment is a valid
// configuration:
//
//	CALC_PROMPT       prompt printed before reading an expression
//	CALC_HISTORY_DB   path of the SQLite history journal; empty disables it
//	CALC_LOG_LEVEL    debug, info, warn or error
//	CALC_FORMAT       history listing format, text or yaml
package config
