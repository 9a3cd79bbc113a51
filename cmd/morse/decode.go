package main

import (
	"fmt"
	"os"

	"github.com/cwtools/morse"
)

func decode(args []string) {
	out := make([]byte, 0, len(args)+1)
	for _, arg := range args {
		c, err := morse.DecodeString(arg)
		if err != nil {
			// Fatal for the whole invocation; operands after this one are
			// not looked at.
			_, _ = fmt.Fprintf(os.Stderr, "Failed to decode [%s]: %v\n", arg, err)
			os.Exit(exitDecodeFail)
		}
		out = append(out, c)
	}
	out = append(out, '\n')

	if _, err := os.Stdout.Write(out); err != nil {
		os.Exit(exitDecodeWrite)
	}

	os.Exit(exitOK)
}
