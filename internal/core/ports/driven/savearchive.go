package driven

import "context"

// SaveRepository opens save archives from disk and persists rewritten ones.
type SaveRepository interface {
	// Open reads the whole file at path into memory and opens it as an archive.
	Open(ctx context.Context, path string) (SaveArchive, error)

	// Exists reports whether a file is present at path.
	Exists(path string) (bool, error)

	// WriteFile stores data at path. The file either appears complete or not at all.
	WriteFile(ctx context.Context, path string, data []byte) error
}

// SaveArchive is an opened, in-memory save archive.
type SaveArchive interface {
	// Path returns the file the archive was read from.
	Path() string

	// Names returns the member names in archive order.
	Names() []string

	// ReadMember returns the decompressed bytes of one member.
	ReadMember(name string) ([]byte, error)

	// Rewrite starts a new archive derived from this one.
	Rewrite() ArchiveWriter
}

// ArchiveWriter builds a new archive in memory.
type ArchiveWriter interface {
	// CopyMembers copies, in archive order, every member of the source
	// archive for which skip returns false. Members are copied without
	// recompression, keeping their compression method, modification time
	// and mode bits. Members sharing a name are each copied. It returns the
	// number of members copied.
	CopyMembers(skip func(name string) bool) (int, error)

	// WriteStored adds an uncompressed member.
	WriteStored(name string, data []byte) error

	// Finish writes the central directory and returns the archive bytes.
	Finish() ([]byte, error)
}
