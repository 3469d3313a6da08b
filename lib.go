package gocalc

import (
	"bufio"
	"fmt"
	"path"
	"sort"
	"strings"

	"fortio.org/log"
	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/gocalc/statik"
)

//go:generate statik -src=prelude -f

// LoadPrelude runs every statement of the embedded prelude files against
// env. Blank lines and lines starting with '#' are ignored.
func LoadPrelude(env *Env) error {
	statikFS, err := fs.New()
	if err != nil {
		return err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return err
	}
	sort.Slice(fis, func(i, j int) bool {
		return fis[i].Name() < fis[j].Name()
	})

	sess := NewSession(WithEnv(env))
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != ".calc" {
			continue
		}
		name := path.Join("/", fi.Name())
		f, err := statikFS.Open(name)
		if err != nil {
			return err
		}
		scanner := bufio.NewScanner(f)
		lineno := 0
		for scanner.Scan() {
			lineno++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if _, err := sess.Run(line); err != nil {
				f.Close()
				return fmt.Errorf("prelude %s:%d: %w", name, lineno, err)
			}
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return fmt.Errorf("prelude %s: %w", name, err)
		}
		log.LogVf("loaded prelude %s", name)
	}
	return nil
}
