package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
)

type runner struct {
	sess      *gocalc.Session
	out       io.Writer
	errOut    io.Writer
	precision int
	dump      bool
}

// run executes one line and reports whether it succeeded.
func (r *runner) run(line string) bool {
	res, err := r.sess.Run(line)
	if err != nil {
		fmt.Fprintln(r.errOut, err)
		return false
	}
	if r.dump {
		if err := gocalc.Dump(r.out, res.Stmt); err != nil {
			log.Errf("dump: %v", err)
		}
	}
	if res.HasValue {
		fmt.Fprintln(r.out, gocalc.FormatValue(res.Value, r.precision))
	}
	return true
}

func (r *runner) repl(in io.Reader, prompt string) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.run(line)
	}
	if err := scanner.Err(); err != nil {
		log.Errf("read: %v", err)
	}
}

// script runs every line of in and returns the number of failed
// statements. Blank lines and '#' comments are skipped.
func (r *runner) script(in io.Reader) (int, error) {
	failed := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !r.run(line) {
			failed++
		}
	}
	return failed, scanner.Err()
}

func newSession(cfg *gocalc.Config) (*gocalc.Session, error) {
	env := gocalc.NewEnv()
	if cfg.Prelude {
		if err := gocalc.LoadPrelude(env); err != nil {
			return nil, err
		}
	}
	if err := cfg.Apply(env); err != nil {
		return nil, err
	}
	log.LogVf("session starts with %d variables", env.Len())
	return gocalc.NewSession(gocalc.WithEnv(env), gocalc.WithFold(cfg.Fold)), nil
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	fold := flag.Bool("fold", false, "fold constant subexpressions before evaluation")
	noPrelude := flag.Bool("no-prelude", false, "do not bind the built-in constants")
	dump := flag.Bool("dump", false, "print the syntax tree of every statement")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := gocalc.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = gocalc.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}
	if *fold {
		cfg.Fold = true
	}
	if *noPrelude {
		cfg.Prelude = false
	}
	if *verbose {
		cfg.LogLevel = "verbose"
	}
	log.SetLogLevel(cfg.Level())

	sess, err := newSession(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	r := &runner{
		sess:      sess,
		out:       os.Stdout,
		errOut:    os.Stderr,
		precision: cfg.Precision,
		dump:      *dump,
	}

	var f *os.File
	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			r.errOut = os.Stdout
			r.repl(os.Stdin, cfg.Prompt)
			return
		}
		f = os.Stdin
	} else {
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer f.Close()
	}

	failed, err := r.script(f)
	if err != nil {
		log.Errf("read: %v", err)
		os.Exit(1)
	}
	if failed > 0 {
		log.Infof("%d statement(s) failed", failed)
		os.Exit(1)
	}
}
