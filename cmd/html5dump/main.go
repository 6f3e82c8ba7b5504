// Command html5dump reads HTML from a file argument (or stdin) and prints
// either the round-trip HTML or the fixture test-format tree dump.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/corvidlabs/html5"
	"github.com/corvidlabs/html5/internal/serialize"
)

func main() {
	format := flag.String("format", "html", "output format: html or tree")
	fragment := flag.Bool("fragment", false, "parse as a fragment instead of a full document")
	flag.Parse()

	log := logrus.WithField("component", "html5dump")

	var r io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.WithError(err).Fatal("open input")
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		log.WithError(err).Fatal("read input")
	}

	opts := html5.Options{Fragment: *fragment}
	var parsed *html5.Parsed
	if *fragment {
		parsed, err = html5.ParseFragment(string(data), opts)
	} else {
		parsed, err = html5.Parse(string(data), opts)
	}
	if err != nil {
		log.WithError(err).Fatal("parse")
	}

	switch *format {
	case "tree":
		os.Stdout.WriteString(serialize.ToTestFormat(parsed.Root))
		os.Stdout.WriteString("\n")
	default:
		os.Stdout.WriteString(parsed.ToHTML())
	}
}
