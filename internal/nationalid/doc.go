// Package nationalid decodes Egyptian National ID numbers.
//
// A National ID is a 14-digit string laid out as:
//
//	C YY MM DD GG SSS X K
//	│ │  │  │  │  │   │ └─ check digit (not validated)
//	│ │  │  │  │  │   └─── gender parity digit (odd = male, even = female)
//	│ │  │  │  │  └─────── sequence within the birth date
//	│ │  │  │  └────────── governorate of birth registration
//	│ │  │  └───────────── day of birth
//	│ │  └──────────────── month of birth
//	│ └─────────────────── year within century
//	└───────────────────── century (2 = 1900s, 3 = 2000s)
//
// # Domain Purity
//
// This package performs no I/O, takes no context.Context and never calls
// time.Now(). Decoding is a pure function of the input string and the fixed
// governorate table, so it is safe for concurrent use without coordination.
// Callers needing "now" (age derivation) pass it in.
package nationalid
