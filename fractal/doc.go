// Package fractal holds the numeric core of the viewer: the Mandelbrot
// escape-time evaluator and the iteration-count to palette classifier.
//
// Both functions are pure and allocation-free so the renderer can call them
// for every cell of every frame.
package fractal
