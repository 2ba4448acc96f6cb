// Package terminal wraps a tcell screen behind a small cell-flush interface.
//
// The game renders into a row-major []Cell and hands it to Flush; input arrives
// as Event values from PollEvent. Raw mode ownership, color downgrade and crash
// restoration (EmergencyReset) live here so no other package touches the tty.
package terminal
