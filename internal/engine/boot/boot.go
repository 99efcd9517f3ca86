// Released under an MIT license. See LICENSE.

// Package boot provides what is necessary for bootstrapping jester.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.jst
var script string //nolint:gochecknoglobals

// Script returns the boot script for jester.
func Script() string {
	return script
}
