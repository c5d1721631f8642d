package main

import (
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// traceKeys are the tracers of the sketchpad packages.
var traceKeys = []string{
	"sketchpad",
	"sketchpad.arrow",
	"sketchpad.clip",
	"sketchpad.equations",
	"sketchpad.raster",
	"sketchpad.sketch",
	"sketchpad.spline",
	"sketchpad.surface",
}

// setupTracing installs trace2go as the global trace selector, spawning Go
// logger tracers. Tracers are created once per key, so their levels stick.
// Without verbose only errors are traced.
func setupTracing(verbose bool) error {
	level := tracing.LevelError
	if verbose {
		level = tracing.LevelDebug
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"tracelevel.root": level.String(),
	}
	for _, key := range traceKeys {
		conf["tracelevel."+key] = level.String()
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	return nil
}
