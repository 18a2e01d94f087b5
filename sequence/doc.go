// Package sequence holds two small index-arithmetic routines over flat
// sequences: the balance point of an integer slice and the periodic
// odd-to-end string shuffle.
package sequence
