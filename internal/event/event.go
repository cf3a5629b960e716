// Package event provides the synchronous event bus documents publish
// their lifecycle on: loads, saves, edits and external on-disk changes.
package event

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeBufferModified    // buffer content changed (edit, undo or redo)
	TypeBufferLoaded      // a file was loaded into the document
	TypeBufferSaved       // the document was written to disk
	TypeFileChangedOnDisk // the backing file changed outside the editor
)

// Event is the structure passed through the bus.
type Event struct {
	Type Type
	Data any
}

// BufferModifiedData describes a single edit.
type BufferModifiedData struct {
	// Line is the first line the edit touched.
	Line int
}

// BufferLoadedData reports the path a document was loaded from.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData reports the path a document was saved to.
type BufferSavedData struct {
	FilePath string
}

// FileChangedOnDiskData reports an external change to the backing file.
type FileChangedOnDiskData struct {
	FilePath string
	// Removed is true when the file was deleted or renamed away.
	Removed bool
}
