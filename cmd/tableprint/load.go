package main

import (
	"bufio"
	"context"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-spritetable/paths"
	"badc0de.net/pkg/go-spritetable/table"
)

// loadAll decodes each of the named tables. Decoding happens concurrently;
// the result is in the same order as names.
func loadAll(ctx context.Context, names []string) ([]*table.Table, error) {
	tables := make([]*table.Table, len(names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := load(name)
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

func load(name string) (*table.Table, error) {
	f, err := paths.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "opening table file")
	}
	defer f.Close()

	t, err := table.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding table %q", name)
	}
	glog.V(1).Infof("%s: %d images", name, t.Len())
	return t, nil
}
