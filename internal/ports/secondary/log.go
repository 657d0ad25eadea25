package secondary

// ProgressLogger receives the human-readable diagnostics emitted while a
// combine run is in flight. Implementations decide formatting and
// destination; the lines are not machine-structured.
type ProgressLogger interface {
	// AnchorRead reports that the anchor document was read successfully.
	AnchorRead(name string)

	// FileAdded reports that a numbered file was appended to the document.
	FileAdded(name string)

	// FileSkipped reports that a numbered file could not be read and was
	// left out of the document.
	FileSkipped(name string, err error)
}
