package archive_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"

	"github.com/couchcryptid/faa-drone-registry/internal/archive"
	"github.com/couchcryptid/faa-drone-registry/internal/fixture"
)

const testMember = "ACFTREF.txt"

func testArchive(t *testing.T, members map[string][]byte) *archive.Archive {
	t.Helper()
	data, err := fixture.Zip(members)
	require.NoError(t, err)
	a, err := archive.FromBytes(data)
	require.NoError(t, err)
	return a
}

func readMember(t *testing.T, a *archive.Archive, name string) string {
	t.Helper()
	rc, err := a.Open(name)
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestArchive_Members(t *testing.T) {
	a := testArchive(t, map[string][]byte{
		"ACFTREF.txt": []byte("CODE,\n"),
		"MASTER.txt":  []byte("N-NUMBER,\n"),
		"DEREG.txt":   []byte("N-NUMBER,\n"),
	})

	assert.ElementsMatch(t, []string{"ACFTREF.txt", "MASTER.txt", "DEREG.txt"}, a.Members())
}

func TestArchive_OpenStripsBOM(t *testing.T) {
	a := testArchive(t, map[string][]byte{
		testMember: append([]byte{0xEF, 0xBB, 0xBF}, "CODE,MFR,\n"...),
	})

	assert.Equal(t, "CODE,MFR,\n", readMember(t, a, testMember))
}

func TestArchive_OpenWithoutBOM(t *testing.T) {
	a := testArchive(t, map[string][]byte{testMember: []byte("CODE,MFR,\nA1,ÅCME,\n")})

	assert.Equal(t, "CODE,MFR,\nA1,ÅCME,\n", readMember(t, a, testMember))
}

func TestArchive_OpenRejectsInvalidUTF8(t *testing.T) {
	tests := []struct {
		name   string
		member []byte
	}{
		{"latin-1 byte", []byte("CODE,MFR,\nA1,CAF\xe9,\n")},
		{"utf-16 BOM", []byte("\xff\xfeC\x00O\x00,\x00\n\x00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testArchive(t, map[string][]byte{testMember: tt.member})

			rc, err := a.Open(testMember)
			require.NoError(t, err)
			defer rc.Close()

			_, err = io.ReadAll(rc)
			require.ErrorIs(t, err, encoding.ErrInvalidUTF8)

			var archErr *archive.Error
			require.ErrorAs(t, err, &archErr)
			assert.Equal(t, testMember, archErr.Member)
		})
	}
}

func TestArchive_OpenTwiceReadsFromStart(t *testing.T) {
	a := testArchive(t, map[string][]byte{testMember: []byte("CODE,\nA1,\n")})

	first := readMember(t, a, testMember)
	second := readMember(t, a, testMember)
	assert.Equal(t, first, second)
}

func TestArchive_MissingMember(t *testing.T) {
	a := testArchive(t, map[string][]byte{testMember: []byte("CODE,\n")})

	_, err := a.Open("MASTER.txt")
	require.Error(t, err)

	var archErr *archive.Error
	require.ErrorAs(t, err, &archErr)
	assert.Equal(t, "MASTER.txt", archErr.Member)
	require.ErrorIs(t, err, archive.ErrMemberNotFound)
	assert.Contains(t, err.Error(), "MASTER.txt")
}

func TestFromBytes_NotAZip(t *testing.T) {
	_, err := archive.FromBytes([]byte("this is not a zip archive"))
	require.Error(t, err)

	var archErr *archive.Error
	require.ErrorAs(t, err, &archErr)
	assert.Empty(t, archErr.Member)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := archive.Load(filepath.Join(t.TempDir(), "nope.zip"))
	require.Error(t, err)

	var archErr *archive.Error
	require.ErrorAs(t, err, &archErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveAndLoad(t *testing.T) {
	data, err := fixture.Sample()
	require.NoError(t, err)
	a, err := archive.FromBytes(data)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ReleasableAircraft.zip")
	require.NoError(t, a.Save(path))

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, saved)

	loaded, err := archive.Load(path)
	require.NoError(t, err)
	assert.Equal(t, len(data), loaded.Size())
	assert.ElementsMatch(t, a.Members(), loaded.Members())
}
