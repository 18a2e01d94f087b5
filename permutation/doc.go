// Package permutation finds the nearest larger number made of the same
// decimal digits ("next permutation" over digits).
//
// The step scans right to left for the first digit that breaks the
// descending run (the pivot), swaps it with the smallest larger digit to its
// right (the successor) and sorts the suffix ascending.
//
//	1 2 0 3 4 5 0        pivot = 4, successor = 5
//	        ^ ^
//	1 2 0 3 5 4 0   →   1 2 0 3 5 0 4
//
// Numbers whose digits are already descending have no larger arrangement and
// are returned unchanged.
package permutation
