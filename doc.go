// Package avm2 implements the application-domain and name-resolution
// subsystem of an ActionScript 3 virtual machine.
//
// An application Domain is a scope that owns two export tables (one for
// scripts, one for classes) plus an optional parent Domain, forming a chain
// rooted at a privileged global domain. The interpreter asks a Domain to
// resolve a Multiname; resolution probes the local export tables with
// namespace-set matching and falls back to the parent chain. When a name
// encodes a generic application (`Vector.<T>`), the type parameter is
// resolved through the same chain and the base class specializes itself on
// demand, memoizing the result.
//
// Each fully-initialized Domain also carries domain memory: a growable
// linear byte buffer (ByteArray) addressed by the VM's low-level memory
// opcodes. Outside of the bootstrap window for the global domain, a Domain
// without memory is a construction-order bug, not a runtime condition.
//
// This package does not execute bytecode, load SWF content, or implement
// the full object model. Scripts arrive fully formed from a loader; the
// interpreter and its activation records are external collaborators that
// call in through Domain's resolution methods.
package avm2

// Version of the avm2 domain subsystem.
const Version = "0.1.0"
