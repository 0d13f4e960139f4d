package main

import (
	"bufio"
	"fmt"
	"io"
	log "log/slog"
	"os"
	"strings"

	cli "github.com/spf13/pflag"

	"github.com/zephyrtronium/vocal"
	"github.com/zephyrtronium/vocal/internal/config"
	"github.com/zephyrtronium/vocal/internal/logging"
)

func main() {
	var (
		inname, verb, envfile, level string
		nl, echo, say, words, kws    bool
		prec                         uint
	)
	cli.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	cli.StringVar(&verb, "fmt", vocal.DefaultFormat, "result formatting string")
	cli.UintVarP(&prec, "prec", "p", vocal.DefaultPrec, "precision of calculations in bits")
	cli.BoolVarP(&nl, "lines", "n", false, "evaluate separate input lines as separate expressions")
	cli.BoolVar(&echo, "echo", false, "print resolved text and extracted terms")
	cli.BoolVar(&say, "say", false, "print results and errors as spoken sentences")
	cli.BoolVar(&words, "spoken-numbers", false, `accept spelled-out numbers like "twenty-five"`)
	cli.BoolVar(&kws, "keywords", false, "list operator keywords and exit")
	cli.StringVar(&envfile, "env", ".env", "file of VOCAL_* settings to load")
	cli.StringVar(&level, "log", "", "log level: debug, info, warn, error")
	cli.Parse()

	cfg, err := config.Load(envfile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !cli.CommandLine.Changed("fmt") {
		verb = cfg.Format
	}
	if !cli.CommandLine.Changed("prec") {
		prec = cfg.Prec
	}
	if !cli.CommandLine.Changed("spoken-numbers") {
		words = cfg.SpokenNumbers
	}
	if level == "" {
		level = cfg.LogLevel
	}
	if _, ok := logging.ParseLevel(level); !ok {
		fmt.Fprintf(os.Stderr, "unknown log level %q\n", level)
		os.Exit(2)
	}
	log.SetDefault(logging.New(os.Stderr, level))
	if prec == 0 {
		log.Error("precision must be positive")
		os.Exit(2)
	}

	if kws {
		listKeywords(os.Stdout)
		return
	}

	exprs, err := inputs(inname, cli.Args(), nl)
	if err != nil {
		log.Error("reading input", "err", err)
		os.Exit(1)
	}

	ctx := vocal.NewContext(vocal.Prec(prec), vocal.SpokenNumbers(words))
	failed := false
	for _, text := range exprs {
		if echo {
			printTerms(ctx, text)
		}
		r, err := ctx.Eval(text)
		switch {
		case err != nil && say:
			fmt.Println(vocal.Explain(err))
			failed = true
		case err != nil:
			fmt.Println(err)
			failed = true
		case say:
			fmt.Println(vocal.Say(r, verb))
		default:
			fmt.Println(vocal.Format(r, verb))
		}
	}
	if failed {
		os.Exit(1)
	}
}

// inputs collects the expressions to evaluate: the input file or stdin first,
// then each argument. With lines, each non-blank line of a file is a separate
// expression; otherwise a whole file is one.
func inputs(inname string, args []string, lines bool) ([]string, error) {
	var r []string
	f, err := infile(inname, len(args) == 0)
	if err != nil {
		return nil, err
	}
	if f != nil {
		defer f.Close()
		if lines {
			sc := bufio.NewScanner(f)
			for sc.Scan() {
				if s := strings.TrimSpace(sc.Text()); s != "" {
					r = append(r, s)
				}
			}
			if err := sc.Err(); err != nil {
				return nil, err
			}
		} else {
			b, err := io.ReadAll(f)
			if err != nil {
				return nil, err
			}
			if s := strings.TrimSpace(string(b)); s != "" {
				r = append(r, s)
			}
		}
	}
	return append(r, args...), nil
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}

func printTerms(ctx *vocal.Context, text string) {
	s, err := ctx.Resolve(text)
	if err != nil {
		fmt.Printf("%q : ", text)
		return
	}
	t, err := ctx.Tokenize(s)
	if err != nil {
		fmt.Printf("%q : ", s)
		return
	}
	fmt.Printf("%q %v : ", strings.Join(strings.Fields(s), " "), t)
}

func listKeywords(w io.Writer) {
	for _, op := range []vocal.Op{vocal.OpAdd, vocal.OpSub, vocal.OpMul, vocal.OpDiv} {
		fmt.Fprintf(w, "%-9s %s\n", op, strings.Join(vocal.Keywords(op), ", "))
	}
	fmt.Fprintf(w, "%-9s %s\n", "open", strings.Join(vocal.OpenPhrases, ", "))
	fmt.Fprintf(w, "%-9s %s\n", "close", strings.Join(vocal.ClosePhrases, ", "))
}
