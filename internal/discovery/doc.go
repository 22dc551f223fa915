// Package discovery applies platform service bindings to discovery client
// options.
//
// The [Configurer] is the only place where precedence between settings-file
// values and platform-provided values is decided. It performs no I/O and
// reads no global state: everything it needs is passed in explicitly.
package discovery
