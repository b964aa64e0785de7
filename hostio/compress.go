//go:build mpack_hostio && !mpack_noalloc

package hostio

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/mpackgo/mpack/buf"
	"github.com/mpackgo/mpack/endian"
)

// CompressionType selects the transport codec a compressed host stream
// uses.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Codec compresses and decompresses whole buffers framing one or more
// MessagePack values over a network or file stream.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// NewCodec builds the Codec for typ.
func NewCodec(typ CompressionType) (Codec, error) {
	switch typ {
	case CompressionNone:
		return noopCodec{}, nil
	case CompressionZstd:
		return ZstdCodec{}, nil
	case CompressionS2:
		return S2Codec{}, nil
	case CompressionLZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("msgpack: invalid host-stream compression type %s", typ)
	}
}

type noopCodec struct{}

func (noopCodec) Compress(data []byte) ([]byte, error)   { return data, nil }
func (noopCodec) Decompress(data []byte) ([]byte, error) { return data, nil }

// ZstdCodec compresses with Zstandard, favoring ratio over speed: suited
// to archived or infrequently-read MessagePack streams.
type ZstdCodec struct{}

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.EncodeAll(data, nil), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return dec.DecodeAll(data, nil)
}

// S2Codec compresses with S2, a Snappy derivative tuned for throughput.
type S2Codec struct{}

func (S2Codec) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

func (S2Codec) Decompress(data []byte) ([]byte, error) {
	return s2.Decode(nil, data)
}

// LZ4Codec compresses with LZ4, the fastest of the three at a lower ratio.
type LZ4Codec struct{}

func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	var c lz4.Compressor
	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		dst := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, dst)
		if err == nil {
			return dst[:n], nil
		}
		bufSize *= 2
	}

	return nil, fmt.Errorf("msgpack: lz4 decompression exceeded %d byte buffer", maxSize)
}

// NewCompressedWriter returns a Writer whose Flush compresses the
// buffered bytes with codec before writing them to dst, length-prefixed
// so NewCompressedReader knows how much compressed data to read.
func NewCompressedWriter(dst io.Writer, typ CompressionType) (*CompressedWriter, error) {
	codec, err := NewCodec(typ)
	if err != nil {
		return nil, err
	}

	return &CompressedWriter{Writer: ToWriter(dst), codec: codec, dst: dst}, nil
}

// CompressedWriter is a Writer that compresses its buffered bytes on Flush.
type CompressedWriter struct {
	*Writer
	codec Codec
	dst   io.Writer
}

// Flush compresses everything buffered so far and writes a
// uint32-length-prefixed compressed frame to the host stream.
func (w *CompressedWriter) Flush() error {
	raw := w.Writer.gw.Bytes()

	compressed, err := w.codec.Compress(raw)
	if err != nil {
		return err
	}

	var lenPrefix [4]byte
	endian.PutUint32(lenPrefix[:], uint32(len(compressed)))

	if _, err := w.dst.Write(lenPrefix[:]); err != nil {
		return err
	}
	if _, err := w.dst.Write(compressed); err != nil {
		return err
	}

	w.Writer.gw.Release()
	w.Writer.gw = buf.NewGrowableWriter()

	return nil
}

// NewCompressedReader reads one uint32-length-prefixed compressed frame
// from src, decompresses it with codec, and returns a *buf.Reader over
// the result.
func NewCompressedReader(src io.Reader, typ CompressionType) (*buf.Reader, error) {
	codec, err := NewCodec(typ)
	if err != nil {
		return nil, err
	}

	var lenPrefix [4]byte
	if _, err := io.ReadFull(src, lenPrefix[:]); err != nil {
		return nil, err
	}
	n := endian.Uint32(lenPrefix[:])

	compressed := make([]byte, n)
	if _, err := io.ReadFull(src, compressed); err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(compressed)
	if err != nil {
		return nil, err
	}

	return buf.NewReader(raw), nil
}
