/*
Command loaderutil computes content hashes, asset names and module requests
from the command line.

	loaderutil digest --algo md5 --encoding base62 --length 8 img/logo.png
	loaderutil name --template "[name].[contenthash:8].[ext]" src/*.css
	loaderutil query '?limit=1024&esModule'
	loaderutil request --root ~ /img/logo.png
	loaderutil html --root . index.html

Defaults are read from loaderutil.toml in the working directory, or from the
file given with --config.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "loaderutil:", err)
		}
		os.Exit(1)
	}
}
