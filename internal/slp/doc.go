// Package slp validates Slippi replay files.
//
// Ownership boundary:
//   - file envelope and metadata block decode
//   - event payload-size table
//   - per-event record decoders with format-revision gates
//   - frame event ordering state machine
//   - the per-file validation driver
//
// Decoding never panics on malformed input. Structural faults abort the
// file with an error; semantic faults are logged through a Diag and
// counted, and the decode continues.
package slp
