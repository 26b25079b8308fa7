// Package cc26x2 binds the gpio package to the real register map of a
// CC26x2-class SoC. The register overlays use runtime/volatile and are
// only compiled under TinyGo; on a host build this package is
// documentation plus the NewPort entry point's contract.
package cc26x2
