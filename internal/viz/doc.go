// Package viz draws rendered buffers and render statistics in the terminal.
//
//   - [Braille] and [Shade]: low resolution previews of a pixel buffer
//   - [HistogramPlot]: distribution of gray levels
//   - [Summary] and [ProgressBar]: styled status output
package viz
