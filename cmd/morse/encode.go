package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwtools/morse"
)

func encode(args []string) {
	for _, arg := range args {
		words, err := morse.EncodeString(strings.ToUpper(arg))
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Failed to encode [%s]: %v\n", arg, err)
			os.Exit(exitEncodeFail)
		}

		if _, err := fmt.Fprintln(os.Stdout, words); err != nil {
			os.Exit(exitEncodeWrite)
		}
	}

	os.Exit(exitOK)
}
