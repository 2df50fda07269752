package imageio

// Input is the pull-based reader interface a format plugin implements.
//
// Subimages are 0-based. For animated images subimage n is the canvas as
// displayed after frame n has been composited. Implementations must be
// safe for concurrent ReadScanline calls.
type Input interface {
	// Spec returns the image spec established when the input was opened.
	Spec() Spec

	// CurrentSubimage returns the subimage the input is positioned at.
	CurrentSubimage() int

	// SeekSubimage positions the input at the given subimage, decoding
	// it if necessary. Seeking to the current subimage is a no-op.
	SeekSubimage(n int) error

	// ReadScanline copies row y of the given subimage into dst, which
	// must hold at least Spec().ScanlineSize() bytes. It seeks first
	// when the input is positioned at a different subimage.
	ReadScanline(subimage, y int, dst []byte) error

	// Close releases decoded buffers. Close is idempotent.
	Close() error
}
