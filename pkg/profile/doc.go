// Package profile loads declarative YAML run profiles for the combination
// engine, so runs are repeatable and scriptable instead of re-entered
// interactively.
//
// A profile mirrors passgen.Config:
//
//	mode: biographical
//	first_name: ana
//	last_name: reis
//	nicknames: [ani]
//	numbers: ["7", "1987"]
//	symbols: ["_", "!"]
//	max_arity: 3
//	capitalization: tokens
//	capitalization_scope: both
//	separators:
//	  max_per_gap: 1
//	  allow_repeat: true
//
// Unknown fields are rejected at decode time; semantic validation stays
// with passgen.Config.Validate.
package profile
