// Package match provides identifier normalization and edit-distance helpers.
//
// Key functions:
//   - NormalizeIdent: folds "firstName", "FirstName" and "first_name" together
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names close to a misspelled one
package match
