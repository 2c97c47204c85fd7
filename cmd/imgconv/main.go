// Command imgconv converts images between BMP, PPM and JPEG, picking each format from
// the file extension.
//
//	imgconv [-config imgconv.yml] [-verify] <in_file> <out_file>
//
// A trailing .zst on either path compresses or decompresses that side with zstd.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
