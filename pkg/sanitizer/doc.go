// Package sanitizer normalises and masks registration input.
//
// Normalisers (NormalizeEmail, NormalizePhone, NormalizeCPF) produce the
// canonical form used for storage keys and comparisons. Maskers (MaskEmail,
// MaskCPF, MaskString) produce values that are safe to log or render back to
// a client. None of the helpers validate; invalid input is passed through so
// that the validator can report it with the right message.
//
// FoldEmail uses golang.org/x/text/cases for full unicode case folding; every
// other helper depends only on the standard library.
package sanitizer
