// Package display renders thermal pressure readings in watch mode.
//
// Two displays sit behind Mode, which the poll loop drives with four
// events: a reading arrived, the level changed, a countdown tick, and the
// end of a cycle.
//
// PlainDisplay prints a line per change and rewrites a single status line
// for the countdown.
//
// BarDisplay keeps a History sized to the terminal width and draws it as a
// ChartRows-tall column chart on an InlineSurface. Every row holds two
// vertical units (a lower half block or a full block), so three rows can
// show six heights. Nominal, Heavy and Sleeping look like this:
//
//	    ▄
//	  ▄ █
//	▄ █ █
//
// Change lines are inserted into the scrollback above the chart, so the
// chart stays pinned under the latest output.
package display
