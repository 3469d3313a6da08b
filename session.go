package gocalc

import (
	"sync"

	"fortio.org/log"
)

// Result is the outcome of one line run through a Session.
type Result struct {
	Stmt     Statement
	Value    float64
	HasValue bool
}

// Session runs statements one line at a time against a single Env. Calls to
// Run on one Session are serialised.
type Session struct {
	mu   sync.Mutex
	env  *Env
	fold bool
}

type Option func(*Session)

// WithFold enables constant folding before evaluation.
func WithFold(fold bool) Option {
	return func(s *Session) {
		s.fold = fold
	}
}

// WithEnv makes the session share env instead of starting empty. Sessions
// sharing an Env do not share a lock and must not run concurrently.
func WithEnv(env *Env) Option {
	return func(s *Session) {
		s.env = env
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.env == nil {
		s.env = NewEnv()
	}
	return s
}

func (s *Session) Env() *Env {
	return s.env
}

// Run parses line as one statement and executes it. A failing statement
// leaves the environment as it was.
func (s *Session) Run(line string) (Result, error) {
	stmt, err := ParseString(line)
	if err != nil {
		return Result{}, err
	}
	if s.fold {
		FoldStatement(stmt)
		log.LogVf("folded %v", stmt)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok, err := Exec(s.env, stmt)
	if err != nil {
		return Result{Stmt: stmt}, err
	}
	return Result{Stmt: stmt, Value: v, HasValue: ok}, nil
}
