package zipfs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driven"
)

var (
	_ driven.SaveArchive   = (*Archive)(nil)
	_ driven.ArchiveWriter = (*Writer)(nil)
)

var errFinished = errors.New("archive already finished")

// Archive is an opened in-memory ZIP archive.
type Archive struct {
	path   string
	files  []*zip.File
	byName map[string]*zip.File
}

// Path returns the file the archive was read from.
func (a *Archive) Path() string {
	return a.path
}

// Names returns the member names in central directory order.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.files))
	for _, f := range a.files {
		names = append(names, f.Name)
	}
	return names
}

// ReadMember returns the decompressed contents of name.
func (a *Archive) ReadMember(name string) ([]byte, error) {
	f, err := a.member(name)
	if err != nil {
		return nil, err
	}

	rc, err := f.Open()
	if err != nil {
		return nil, domain.NewSaveError(domain.ErrorKindArchive, name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, domain.NewSaveError(domain.ErrorKindArchive, name, err)
	}
	return data, nil
}

// Rewrite starts a new archive that can copy members from a.
func (a *Archive) Rewrite() driven.ArchiveWriter {
	w := &Writer{src: a}
	w.zw = zip.NewWriter(&w.buf)
	return w
}

func (a *Archive) member(name string) (*zip.File, error) {
	f, ok := a.byName[name]
	if !ok {
		return nil, domain.NewSaveError(domain.ErrorKindArchive, name, domain.ErrMissingMember)
	}
	return f, nil
}

// Writer assembles a new archive in memory.
type Writer struct {
	src      *Archive
	buf      bytes.Buffer
	zw       *zip.Writer
	finished bool
}

// CopyMembers copies the raw compressed members of the source archive by
// position, so duplicate names are preserved too.
func (w *Writer) CopyMembers(skip func(name string) bool) (int, error) {
	if w.finished {
		return 0, domain.NewSaveError(domain.ErrorKindArchive, "", errFinished)
	}
	copied := 0
	for _, f := range w.src.files {
		if skip != nil && skip(f.Name) {
			continue
		}
		if err := w.zw.Copy(f); err != nil {
			return copied, domain.NewSaveError(domain.ErrorKindArchive, f.Name, err)
		}
		copied++
	}
	return copied, nil
}

// WriteStored adds name without compression. When the source archive has a
// member of the same name its modification time and mode are kept.
func (w *Writer) WriteStored(name string, data []byte) error {
	if w.finished {
		return domain.NewSaveError(domain.ErrorKindArchive, name, errFinished)
	}

	hdr := &zip.FileHeader{
		Name:     name,
		Method:   zip.Store,
		Modified: time.Now(),
	}
	if f, ok := w.src.byName[name]; ok {
		hdr.Modified = f.Modified
		hdr.CreatorVersion = f.CreatorVersion
		hdr.ExternalAttrs = f.ExternalAttrs
	}

	fw, err := w.zw.CreateHeader(hdr)
	if err != nil {
		return domain.NewSaveError(domain.ErrorKindArchive, name, err)
	}
	if _, err := fw.Write(data); err != nil {
		return domain.NewSaveError(domain.ErrorKindArchive, name, fmt.Errorf("write member: %w", err))
	}
	return nil
}

// Finish writes the central directory and returns the archive bytes.
func (w *Writer) Finish() ([]byte, error) {
	if w.finished {
		return nil, domain.NewSaveError(domain.ErrorKindArchive, "", errFinished)
	}
	w.finished = true
	if err := w.zw.Close(); err != nil {
		return nil, domain.NewSaveError(domain.ErrorKindArchive, "", err)
	}
	return w.buf.Bytes(), nil
}
