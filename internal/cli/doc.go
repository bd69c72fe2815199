// Package cli implements the toast command-line interface.
//
// The root command reads the thermal pressure once by default and maps the
// result onto the exit code (0 nominal, 1 throttled, 2 failure). With
// --watch it hands off to the poll loop in package watch, rendering with
// package display until interrupted (exit 130).
//
// # Settings
//
// Flags, TOAST_* environment variables and ~/.config/toast/config.yaml are
// merged by viper in that order of precedence; see package config.
//
// # Commands
//
//	toast                     read once
//	toast --format json|yaml  read once, structured
//	toast --watch [--bar]     keep watching
//	toast version [--short]
//	toast completion <shell>
package cli
