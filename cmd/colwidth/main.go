// colwidth is a utility to measure the width of a string as it will be laid
// out on the terminal, and to find the offset at a given column
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"
	"golang.org/x/term"

	"git.sr.ht/~rockorager/colwidth"
	"git.sr.ht/~rockorager/colwidth/dbcs"
	"git.sr.ht/~rockorager/colwidth/width"
)

func main() {
	var (
		verbose  bool
		debug    bool
		encoding string
		charset  string
		method   string
		col      int
	)
	flag.BoolVar(&verbose, "v", false, "print verbose result")
	flag.BoolVar(&verbose, "verbose", false, "print verbose result")
	flag.BoolVar(&debug, "debug", false, "log to stderr")
	flag.StringVar(&encoding, "e", os.Getenv("COLWIDTH_ENCODING"), "byte encoding: utf8, wide or narrow (default from the locale)")
	flag.StringVar(&charset, "charset", "", "transcode the text into a legacy charset such as big5 or gbk before measuring")
	flag.StringVar(&method, "m", os.Getenv("COLWIDTH_METHOD"), "width method: table, wcwidth, unicode or uniwidth")
	flag.IntVar(&col, "col", -1, "also print the offset and column reached at this column")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	switch {
	case debug && term.IsTerminal(int(os.Stderr.Fd())):
		log = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: "15:04:05.000",
		}))
	case debug:
		// no colors when stderr is redirected
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	var input string
	switch len(flag.Args()) {
	case 0:
		fmt.Print("Enter text: ")
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Scan()
		input = scanner.Text()
	case 1:
		input = flag.Arg(0)
	default:
		fmt.Println("multiple arguments not supported")
		os.Exit(1)
	}

	opts := colwidth.Options{Logger: log}
	switch {
	case encoding != "":
		enc, err := colwidth.ParseEncoding(encoding)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		opts.Encoding = enc
	case charset != "":
		opts.Encoding = colwidth.EncodingForCharset(charset)
	default:
		opts.Encoding = colwidth.DetectEncoding()
	}
	if method != "" {
		m, err := width.ParseMethod(method)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		opts.Method = m
	}
	log.Debug("configured", "encoding", opts.Encoding, "method", opts.Method, "charset", charset)

	text := colwidth.Bytes(input)
	if charset != "" {
		b, err := dbcs.Encode(charset, input)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		text = colwidth.Bytes(b)
	}

	e := colwidth.New(opts)
	w, err := e.CalcWidth(text, 0, text.Len())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println(w)
	if col >= 0 {
		pos, err := e.CalcTextPos(text, 0, text.Len(), col)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(pos.Offset, pos.Column)
	}
	if verbose {
		out := "|" + strings.Repeat("-", w) + "|"
		fmt.Println(out)
		fmt.Println("|" + input + "|")
	}
}
