// Package sixelframe provides the in-memory image frame that sits between a
// pixel source and a sixel encoder.
//
// # Overview
//
// A Frame owns a pixel buffer in one of the sixel pixel encodings, an
// optional RGB palette and a little animation metadata. It offers the
// in-place operations an encoder needs before quantizing: alpha removal,
// truecolor normalization, resizing and cropping. Every operation either
// succeeds and leaves geometry and format consistent with the buffer, or
// fails with the frame unchanged.
//
// # Quick Start
//
//	import "github.com/gogpu/sixelframe"
//
//	f, err := sixelframe.FromImage(img)
//	if err != nil {
//	    return err
//	}
//	defer f.Release()
//
//	// Composite over white and scale to the terminal cell grid
//	if err := f.StripAlpha(color.White); err != nil {
//	    return err
//	}
//	if err := f.Resize(640, 384, sixelframe.ResampleLanczos3); err != nil {
//	    return err
//	}
//
// # Ownership
//
// Frames are reference counted. New and FromImage return a frame holding
// one reference; Retain adds one and Release drops one. The last Release
// returns the buffers the frame drew from its Allocator. Buffers passed to
// Init and SetPalette are used in place and never handed to the Allocator,
// so one palette can back many frames.
//
// # Architecture
//
// The package is organized into:
//   - Public API: Frame, PixelFormat, ResampleMethod, Allocator, options
//   - Collaborators: Normalizer (format transcoding), Resampler (scaling)
//   - Internal: pixfmt (format table), normalize, resample, bufpool
//
// Resampling filters come from golang.org/x/image/draw and
// github.com/anthonynsimon/bild.
package sixelframe

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
