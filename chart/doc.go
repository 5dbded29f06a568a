// Package chart renders dashboard chart panels for a Chart.js front end.
//
// A panel is described by Inputs, built with New so every tuning field starts
// from its default (height 350px, at most 8 y ticks, y step 0.005). From the
// inputs the package derives, as pure functions:
//
//   - BuildOptions: the engine options (legend, axis titles, grid colour, ticks).
//   - BuildConfig: the full payload, including a precomputed tooltip label for
//     every point so the browser callback only looks text up.
//
// Panel renders the card as a templ component; Script and ScriptHandler supply
// the browser glue that mounts the canvas and posts click events back, which
// Inputs.Dispatch hands to the configured handlers.
//
// Series are tagged with a SeriesKind when the data is built. Only
// category-annotated series get the " Category: <name>" tooltip suffix, and
// only when CategoryTooltip is enabled. ClassifySeries derives the kind from
// the legacy "CII attained" label marker.
package chart
