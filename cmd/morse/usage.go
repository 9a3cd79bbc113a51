package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwtools/morse"
)

const usageFmt = `
morse converts between text and Morse code, one character per code word.

Usage:

    morse <command> [strings ...]

Commands:

    encode    Encodes each argument, printing one line of space-separated
              code words per argument

                  morse encode SOS

    decode    Decodes each argument as a single code word of dots and
              dashes, printing the decoded characters on one line

                  morse decode ... --- ...

    version   Displays the version of this program
    help      Displays this information

The codebook covers the uppercase letters A-Z only; encode upper-cases
its input first. Code words that fit the code tree but name no letter
decode to '?' (an empty code word decodes to '*', the tree root).

Characters:

%s
Tree:
%s
`

const codeTree = `
        DOT or '.' <-- * --> DASH or '-'
                /             \
               E               T
             /   \           /   \
           I       A       N       M
          / \     / \     / \     / \
         S   U   R   W   D   K   G   O
        / \ / \ / \ / \ / \ / \ / \ / \
        H V F ? L ? P J B X C Y Z Q ? ?
`

func usage(out io.Writer) {
	_, _ = fmt.Fprintf(out, usageFmt, letterTable(), codeTree)
}

// letterTable renders the A-Z codebook in two columns, A-M beside N-Z.
// main has already run the self test by the time this gets called, so the
// encode calls cannot fail.
func letterTable() string {
	var b strings.Builder

	for c := byte('A'); c <= 'M'; c++ {
		left, _ := morse.Encode(c)
		right, _ := morse.Encode(c + 13)
		_, _ = fmt.Fprintf(&b, "        %c %-4s  %c %-4s\n", c, left, c+13, right)
	}

	return b.String()
}
