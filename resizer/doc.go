/*
Package resizer turns portfolio photos into fixed-size derivatives.

ResizeImage scales a single image to an exact target size, either by
filling the box and trimming the overflow from the center (ModeCrop) or by
fitting inside the box on a white canvas (ModePad). Output is always opaque
RGB, written as JPEG or PNG depending on the output file extension.

ProcessPortfolioImages runs the batch job over a directory: every recognized
image gets an optional untouched backup plus a preview (800x600) and a slider
(1200x800) derivative, each in its own subdirectory. Failures are per file;
the batch always runs to the end.
*/
package resizer
