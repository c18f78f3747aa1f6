package loaderutil

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// LoaderContext describes the resource a transformer is working on. All
// fields are optional; helpers document which ones they read.
type LoaderContext struct {
	ResourcePath  string // file path of the resource, e.g. "/app/img/logo.png"
	ResourceQuery string // query of the resource request, e.g. "?inline"
	Resource      string // path and query of the resource
	Context       string // directory requests are made relative to

	// Query is the transformer's option string, e.g. "?limit=1024". If it is
	// empty, QueryOptions may carry pre-parsed options.
	Query        string
	QueryOptions map[string]any
	// Config holds named configuration sections for GetLoaderConfig.
	Config map[string]map[string]any

	Loaders          []Loader
	LoaderIndex      int
	CurrentRequest   string // overrides the request derived from Loaders
	RemainingRequest string // overrides the request derived from Loaders
}

// Loader is one entry of a transformer chain.
type Loader struct {
	Request string
}
