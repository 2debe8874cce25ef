package exprlang

import (
	"path"
	"sort"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/exprlang/statik"
)

//go:generate statik -src=lib

// LoadLib runs every embedded library source in s, in name order, without
// echoing results.
func LoadLib(s *Session) error {
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
	sort.Slice(fis, func(i, j int) bool { return fis[i].Name() < fis[j].Name() })
	for _, fi := range fis {
		name := path.Join("/", fi.Name())
		f, err := statikFS.Open(name)
		if err != nil {
			return err
		}
		_, err = s.run(name, f, false)
		f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
