// Package encoding implements the typed MessagePack encoders and
// decoders: one file per wire family (nilbool.go, integer.go, float.go,
// str.go, bin.go, container.go, ext.go, timestamp.go), plus a
// polymorphic decoder (any.go) and the iterative skip operation
// (skip.go).
//
// Every encode function takes a buf.Writer and returns the number of
// bytes written; every decode function takes a *buf.Reader and returns
// the decoded value plus the number of bytes consumed. Decoders never
// leave the reader's position advanced on a failure path: each captures
// the reader's position before touching it and rewinds on every error
// return, so a failed decode is indistinguishable from one that was
// never attempted.
package encoding
