// Package shdlc implements the byte-stuffing framing codec of the Sensirion
// SHDLC serial protocol.  A frame starts and ends with the boundary marker
// 0x7e; any payload byte that collides with a reserved value is replaced by a
// two-byte escape sequence, so the boundary marker can never be mistaken for
// payload data.
package shdlc
