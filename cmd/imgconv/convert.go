package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/oy3o/imglib"
)

// Exit codes of the converter.
const (
	exitOK = iota
	exitUsage
	exitUnknownInput
	exitUnknownOutput
	exitLoadFailed
	exitSaveFailed
	exitVerifyFailed
)

// run executes one conversion and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "imgconv: ", 0)

	fs := flag.NewFlagSet("imgconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	verify := fs.Bool("verify", false, "reload the output and compare pixels")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: imgconv [-config file] [-verify] <in_file> <out_file>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}
	level, _ := cfg.zstdLevel()

	inner, _ := innerPath(inPath)
	inFormat := imglib.FormatByExtension(inner)
	if inFormat == imglib.FormatUnknown {
		logger.Print("Unknown format of the input file")
		return exitUnknownInput
	}
	inner, _ = innerPath(outPath)
	outFormat := imglib.FormatByExtension(inner)
	if outFormat == imglib.FormatUnknown {
		logger.Print("Unknown format of the output file")
		return exitUnknownOutput
	}

	m, err := load(inPath, inFormat)
	if err != nil {
		logger.Printf("Loading failed: %v", err)
		return exitLoadFailed
	}

	if err := save(outPath, outFormat, m, cfg.encodeOptions(), level); err != nil {
		logger.Printf("Saving failed: %v", err)
		return exitSaveFailed
	}

	if *verify || cfg.Verify {
		if outFormat == imglib.FormatJPEG {
			logger.Print("skipping verification of lossy jpeg output")
		} else if err := verifyOutput(outPath, outFormat, m); err != nil {
			logger.Printf("Verification failed: %v", err)
			return exitVerifyFailed
		}
	}

	fmt.Fprintln(stdout, "Successfully converted")
	return exitOK
}

func load(path string, format imglib.Format) (*imglib.Image, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return format.Decode(in)
}

func save(path string, format imglib.Format, m *imglib.Image, opts *imglib.Options, level zstd.EncoderLevel) error {
	out, err := createOutput(path, level)
	if err != nil {
		return err
	}
	if err := format.Encode(out, m, opts); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

var errDigestMismatch = errors.New("output pixels differ from input")

func verifyOutput(path string, format imglib.Format, want *imglib.Image) error {
	got, err := load(path, format)
	if err != nil {
		return err
	}
	if got.Digest() != want.Digest() {
		return fmt.Errorf("%w: %016x != %016x", errDigestMismatch, got.Digest(), want.Digest())
	}
	return nil
}
