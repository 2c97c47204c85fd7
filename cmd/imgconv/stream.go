package main

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const zstdSuffix = ".zst"

// innerPath strips a compression suffix so the format is taken from the extension
// underneath it.
func innerPath(path string) (string, bool) {
	if strings.HasSuffix(strings.ToLower(path), zstdSuffix) {
		return path[:len(path)-len(zstdSuffix)], true
	}
	return path, false
}

type zstdReadCloser struct {
	*zstd.Decoder
	f *os.File
}

func (z *zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

// openInput opens path for reading, transparently decompressing .zst files.
// Plain files are returned as *os.File so decoders can seek in them.
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if _, compressed := innerPath(path); !compressed {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &zstdReadCloser{Decoder: dec, f: f}, nil
}

type zstdWriteCloser struct {
	*zstd.Encoder
	f *os.File
}

func (z *zstdWriteCloser) Close() error {
	if err := z.Encoder.Close(); err != nil {
		z.f.Close()
		return err
	}
	return z.f.Close()
}

// createOutput creates path for writing, compressing when it ends in .zst.
func createOutput(path string, level zstd.EncoderLevel) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if _, compressed := innerPath(path); !compressed {
		return f, nil
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(level))
	if err != nil {
		f.Close()
		return nil, err
	}
	return &zstdWriteCloser{Encoder: enc, f: f}, nil
}
