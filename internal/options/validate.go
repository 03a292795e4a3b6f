// Package options provides shared utilities for option validation across packages.
package options

import "fmt"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources is a variadic list of booleans indicating whether each source is set.
// Returns an error naming the problem when zero or more than one source is set.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}
	switch {
	case count == 0:
		return fmt.Errorf("%s", noSourceMsg)
	case count > 1:
		return fmt.Errorf("%s", multiSourceMsg)
	}
	return nil
}

// ValidateAtMostOneSource ensures no more than one optional input source is
// specified. Zero sources is accepted.
func ValidateAtMostOneSource(multiSourceMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}
	if count > 1 {
		return fmt.Errorf("%s", multiSourceMsg)
	}
	return nil
}
