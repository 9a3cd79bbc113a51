package main

import (
	"os"

	"github.com/cwtools/morse"
)

const (
	cmdEncode  = "encode"
	cmdDecode  = "decode"
	cmdVersion = "version"
	cmdHelp    = "help"
)

// Exit codes. Each failure class gets its own code so scripts can tell
// them apart.
const (
	exitOK          = 0
	exitSelfTest    = 1
	exitNoCommand   = 2
	exitBadCommand  = 3
	exitDecodeWrite = 4
	exitDecodeFail  = 5
	exitEncodeFail  = 6
	exitEncodeWrite = 7
)

func main() {
	// The codec is constant data and a handful of arithmetic, so verifying
	// the full round-trip on every start costs nothing measurable.
	if err := morse.SelfTest(); err != nil {
		_, _ = os.Stderr.Write([]byte(err.Error() + "\n"))
		os.Exit(exitSelfTest)
	}

	args := os.Args[1:]
	if len(args) == 0 {
		usage(os.Stderr)
		os.Exit(exitNoCommand)
	}

	switch args[0] {
	case cmdEncode:
		encode(args[1:])
	case cmdDecode:
		decode(args[1:])
	case cmdVersion:
		version()
	case cmdHelp:
		usage(os.Stdout)
		os.Exit(exitOK)
	}

	usage(os.Stderr)
	os.Exit(exitBadCommand)
}
