package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wotr-save-editor/internal/adapters/driven/archive/zipfs"
	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
	"github.com/custodia-labs/wotr-save-editor/internal/core/ports/driven"
)

const (
	testHeader = `{"Name":"Drezen","CompatibilityVersion":2}`
	testPlayer = `{"$id":"1","Money":5000,"Kingdom":null}`
	testParty  = `{"$id":"1","m_EntityData":[{"$id":"2",` +
		`"$type":"Kingmaker.EntitySystem.Entities.UnitEntityData, Assembly-CSharp",` +
		`"Descriptor":{"$id":"3","CustomName":"Seelah","Blueprint":"bp",` +
		`"Progression":{"$id":"4","Experience":100},` +
		`"Stats":{"$id":"5","Strength":{"$id":"6","Type":"Strength","m_BaseValue":16}}}}]}`
)

var memberTime = time.Date(2021, 9, 2, 14, 30, 0, 0, time.UTC)

type testMember struct {
	name   string
	data   string
	method uint16
	mode   os.FileMode
}

func standardMembers() []testMember {
	return []testMember{
		{name: domain.HeaderMember, data: testHeader, method: zip.Deflate},
		{name: "area_drezen.json", data: `{"area":"` + string(bytes.Repeat([]byte("stone "), 200)) + `"}`, method: zip.Deflate, mode: 0o600},
		{name: domain.PlayerMember, data: testPlayer, method: zip.Deflate},
		{name: domain.PartyMember, data: testParty, method: zip.Deflate},
		{name: "highlight.png", data: "\x89PNG\r\n", method: zip.Store},
	}
}

func buildZip(t *testing.T, members []testMember) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, m := range members {
		hdr := &zip.FileHeader{Name: m.name, Method: m.method, Modified: memberTime}
		if m.mode != 0 {
			hdr.SetMode(m.mode)
		}
		w, err := zw.CreateHeader(hdr)
		require.NoError(t, err)
		_, err = w.Write([]byte(m.data))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// writeSave writes an archive named "Save Game.zks" into a fresh directory.
func writeSave(t *testing.T, members []testMember) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Save Game.zks")
	require.NoError(t, os.WriteFile(path, buildZip(t, members), 0o644))
	return path
}

func withoutMember(members []testMember, name string) []testMember {
	var out []testMember
	for _, m := range members {
		if m.name != name {
			out = append(out, m)
		}
	}
	return out
}

func replaceMember(members []testMember, name, data string) []testMember {
	out := append([]testMember(nil), members...)
	for i := range out {
		if out[i].name == name {
			out[i].data = data
		}
	}
	return out
}

func openZip(t *testing.T, path string) *zip.Reader {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return zr
}

func zipMember(t *testing.T, zr *zip.Reader, name string) *zip.File {
	t.Helper()
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("member %s not found", name)
	return nil
}

func readAll(t *testing.T, open func() (io.ReadCloser, error)) []byte {
	t.Helper()
	rc, err := open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return data
}

func rawBytes(t *testing.T, f *zip.File) []byte {
	t.Helper()
	return readAll(t, func() (io.ReadCloser, error) {
		r, err := f.OpenRaw()
		return io.NopCloser(r), err
	})
}

// countingRepo wraps the zip repository, counts member reads and can fail
// writes on demand.
type countingRepo struct {
	inner    *zipfs.Repository
	reads    int
	writeErr error
	writes   int
}

func newCountingRepo() *countingRepo {
	return &countingRepo{inner: zipfs.NewRepository()}
}

func (r *countingRepo) Open(ctx context.Context, path string) (driven.SaveArchive, error) {
	archive, err := r.inner.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return &countingArchive{SaveArchive: archive, repo: r}, nil
}

func (r *countingRepo) Exists(path string) (bool, error) {
	return r.inner.Exists(path)
}

func (r *countingRepo) WriteFile(ctx context.Context, path string, data []byte) error {
	r.writes++
	if r.writeErr != nil {
		return r.writeErr
	}
	return r.inner.WriteFile(ctx, path, data)
}

type countingArchive struct {
	driven.SaveArchive
	repo *countingRepo
}

func (a *countingArchive) ReadMember(name string) ([]byte, error) {
	a.repo.reads++
	return a.SaveArchive.ReadMember(name)
}

// failingHistory rejects every record.
type failingHistory struct{}

func (failingHistory) Record(context.Context, domain.SaveRecord) error {
	return errors.New("disk full")
}

func (failingHistory) Get(context.Context, string) (*domain.SaveRecord, error) {
	return nil, domain.ErrNotFound
}

func (failingHistory) List(context.Context, int) ([]domain.SaveRecord, error) {
	return nil, nil
}
