// Package maputil provides helpers for the generic map form of the output
// document: deterministic key ordering and the deep merge used to apply a
// user-supplied override document.
package maputil
