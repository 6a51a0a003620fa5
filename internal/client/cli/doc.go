// Package cli implements the interactive profile editor: a small REPL that
// walks the three-step form flow (Basic Info -> About You -> Confirm) on top
// of the draft service. Edits persist locally between runs; quitting
// mid-wizard and starting again resumes at the same step with the same
// staged photos.
package cli
