// SPDX-License-Identifier: EPL-2.0

// Command morsewav converts text files to Morse code WAV audio and back.
//
// Usage:
//
//	morsewav --encode message.txt message.wav
//	morsewav --decode message.wav decoded.txt
//	morsewav
//
// With no arguments it runs a built-in self-test: a fixed sentence is
// encoded to audio, decoded back, and compared. Decoding also accepts
// .mp3, .ogg and .aiff recordings.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/morsewav"
	"github.com/ik5/morsewav/signal"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Println("Running self-test...")
		return morsewav.SelfTest(os.Stdout)
	}

	if len(args) != 3 {
		usage()
		return fmt.Errorf("expected a mode and two file paths, got %d arguments", len(args))
	}

	mode, inPath, outPath := args[0], args[1], args[2]

	switch mode {
	case "--encode":
		enc := morsewav.NewEncoder(signal.Width16)
		if err := enc.EncodeFile(inPath, outPath); err != nil {
			return err
		}
		fmt.Println("Encoded successfully to", outPath)
	case "--decode":
		dec := morsewav.NewDecoder()
		if err := dec.DecodeFile(inPath, outPath); err != nil {
			return err
		}
		fmt.Println("Decoded successfully to", outPath)
	default:
		usage()
		return fmt.Errorf("invalid mode %q, use --encode or --decode", mode)
	}

	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [--encode in.txt out.wav | --decode in.{wav|mp3|ogg|aiff} out.txt]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "       run with no arguments for a self-test")
}
