package datamodel

import "github.com/mpackgo/mpack/buf"

func newTestReader(b []byte) *buf.Reader {
	return buf.NewReader(b)
}
