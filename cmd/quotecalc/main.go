// Command quotecalc считает смету по JSON-файлу без базы и сервера:
// товары с таблицами ступеней описываются прямо в файле.
//
// Использование:
//
//	go run ./cmd/quotecalc draft.json
//	cat draft.json | go run ./cmd/quotecalc
package main

import (
	"cmp"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/enfash/PrintSwift-sub000/internal/domain"
)

const (
	exitOK           = 0
	exitInvalidInput = 1
	exitUsage        = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("quotecalc", flag.ContinueOnError)
	flags.SetOutput(stderr)

	asJSON := flags.Bool("json", false, "print the summary as JSON")

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	input := stdin

	if path := flags.Arg(0); path != "" && path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "open draft: %v\n", err)
			return exitUsage
		}
		defer fh.Close()

		input = fh
	}

	draft, err := readDraft(input)
	if err != nil {
		fmt.Fprintf(stderr, "read draft: %v\n", err)
		return exitInvalidInput
	}

	result, err := calculate(draft)
	if err != nil {
		code, _ := domain.GetCode(err)
		fmt.Fprintf(stderr, "%s: %v\n", cmp.Or(code.String(), "calculate"), err)

		return exitInvalidInput
	}

	if *asJSON {
		err = renderJSON(stdout, result)
	} else {
		err = renderTable(stdout, result)
	}

	if err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return exitUsage
	}

	return exitOK
}
