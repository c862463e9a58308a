// SPDX-License-Identifier: MIT
// Package mrio: functional options for the EXIOBASE reader.

package mrio

// Option configures ParseExiobase3 / ParseFS.
type Option func(*options)

type options struct {
	extensions  map[string]bool // nil: load every extension found
	finalDemand bool
}

func defaultOptions() options {
	return options{finalDemand: true}
}

func gatherOptions(user ...Option) options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithExtensions restricts loading to the named extension folders. Folders
// not listed are skipped, which keeps large accounts out of memory.
func WithExtensions(names ...string) Option {
	return func(o *options) {
		o.extensions = make(map[string]bool, len(names))
		for _, n := range names {
			o.extensions[n] = true
		}
	}
}

// WithoutFinalDemand skips Y.txt and F_Y/S_Y. Output x must then come from
// x.txt or from Z alone.
func WithoutFinalDemand() Option {
	return func(o *options) { o.finalDemand = false }
}

func (o options) wantExtension(name string) bool {
	return o.extensions == nil || o.extensions[name]
}
