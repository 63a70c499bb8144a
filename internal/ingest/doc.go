// Package ingest turns the bytes handed to pickr into records the picker can
// show.
//
// Input is read in one of three formats: plain lines, JSON lines, or YAML
// (a sequence or a stream of documents). Each structured record is then
// resolved to a one-line label and an optional preview using gjson paths.
//
// Key features:
//   - Blank lines are skipped; an invalid JSON line is reported with its line number
//   - YAML records are normalised to compact JSON so every structured record
//     is queried the same way
//   - Resolution runs concurrently and keeps input order
//   - A missing preview value becomes a visible placeholder instead of an error
package ingest
