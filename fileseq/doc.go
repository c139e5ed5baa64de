/*
Package fileseq implements the frame-range algebra behind image file
sequences: collections of files that differ only by a zero-padded frame
number, such as

	image.0001.jpg
	image.0002.jpg
	...
	image.0010.jpg

denoted compactly as "image.1-10#.jpg".

It defines the type Padding, which models the zero-padded width of a frame
number; FrameRange, a single arithmetic progression of frames with optional
step, inverted step, or interleave; FrameSet, an ordered concatenation of
FrameRanges that knows how to normalize a scrambled frame list back into
compact ranges; and FileSequence, a FrameSet wrapped with a filename prefix
and suffix.

FindSequence folds a flat, unordered list of filenames back into recognized
FileSequences and leftover non-sequence names. It is the reverse of
materializing a FileSequence into filenames, and is the building block used
by package walk to reconstruct sequences from a real directory tree.

The package is synchronous and allocation-bounded by its inputs: there is no
I/O and no concurrency primitive anywhere in it. Values are plain data;
copies are deep and cheap, and distinct values may be used concurrently from
separate goroutines, but mutating methods on the same value require external
synchronization.
*/
package fileseq
