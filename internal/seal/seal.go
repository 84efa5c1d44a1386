// Package seal provides a token type which closes interfaces of package vstr
// against implementations outside of this module.
package seal

// Token is passed to the sealing method of vstr.Policy. As it lives in an
// internal package, no other module is able to name it.
type Token struct{}
