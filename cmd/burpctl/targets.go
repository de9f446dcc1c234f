package main

import (
	"errors"
	"strings"

	"github.com/burpctl/burpctl/internal/external-adapters/yaml"
)

// urlList collects repeated -u flags in the order given.
type urlList []string

func (u *urlList) String() string { return strings.Join(*u, ",") }

func (u *urlList) Set(v string) error {
	*u = append(*u, v)
	return nil
}

// resolveTargets merges -u flags with the paths of an optional targets file:
// flag order first, then file order.
func resolveTargets(urls urlList, targetsFile string) ([]string, error) {
	targets := append([]string(nil), urls...)
	if targetsFile != "" {
		list, err := yaml.LoadTargetList(targetsFile)
		if err != nil {
			return nil, err
		}
		targets = append(targets, list.Paths...)
	}
	if len(targets) == 0 {
		return nil, errors.New("no targets given: use -u URL or -t FILE")
	}
	return targets, nil
}
