package assetfile

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/loaderutil"
)

// Result is the outcome of naming one file.
type Result struct {
	Index int    // position of the path in the input
	Path  string // input path
	Name  string // interpolated name, empty on error
	Err   error
}

// ErrIncomplete is returned by Collect if naming stopped before every file
// had its result.
var ErrIncomplete = errors.New("assetfile: naming did not complete")

// NameAll loads and names every path and publishes each Result on cast as
// soon as it is available, in no particular order. Subscribe to cast before
// calling NameAll. The caller owns cast and closes it; cancelling ctx stops
// further loading.
//
// Every file gets its own copy of opts with Content set to the file's
// content. The resource path of a file is its path as given.
func NameAll(ctx context.Context, cast *caster.Caster, paths []string, tmpl loaderutil.Template,
	opts *loaderutil.InterpolateOptions) {
	//
	if opts == nil {
		opts = &loaderutil.InterpolateOptions{}
	}
	go func() {
		workers := make(chan struct{}, runtime.NumCPU())
		var wg sync.WaitGroup
	loop:
		for i, p := range paths {
			select {
			case <-ctx.Done():
				break loop
			case workers <- struct{}{}:
			}
			wg.Add(1)
			go func(i int, p string) {
				defer wg.Done()
				defer func() { <-workers }()
				r := nameFile(i, p, tmpl, *opts)
				if !cast.Pub(r) {
					tracer().Infof("result for %s dropped, caster is closed", p)
				}
			}(i, p)
		}
		wg.Wait()
		tracer().Debugf("naming of %d files done", len(paths))
	}()
}

func nameFile(i int, path string, tmpl loaderutil.Template, opts loaderutil.InterpolateOptions) Result {
	r := Result{Index: i, Path: path}
	f, err := Load(path)
	if err != nil {
		r.Err = err
		return r
	}
	opts.Content = f.Content
	lc := &loaderutil.LoaderContext{ResourcePath: path}
	r.Name, r.Err = loaderutil.InterpolateName(lc, tmpl, &opts)
	return r
}

// Collect names all paths and returns the results in input order. Errors
// for single files are reported in their Result; the returned error is
// non-nil only if some results are missing.
func Collect(ctx context.Context, paths []string, tmpl loaderutil.Template,
	opts *loaderutil.InterpolateOptions) ([]Result, error) {
	//
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}
	cast := caster.New(ctx)
	defer cast.Close()
	ch, ok := cast.Sub(ctx, uint(len(paths)))
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrIncomplete, ctx.Err())
	}
	NameAll(ctx, cast, paths, tmpl, opts)
	for n := 0; n < len(paths); n++ {
		msg, ok := <-ch
		if !ok {
			return results, fmt.Errorf("%w: %d of %d files named", ErrIncomplete, n, len(paths))
		}
		r := msg.(Result)
		results[r.Index] = r
	}
	return results, nil
}
