package csvreport

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/faa-drone-registry/internal/domain"
)

const wantHeader = "n_number,serial_number,mode_s_code,mode_s_code_hex,mfr_mdl_code,mfr,model,no_eng,ac_weight,type_registrant,city,state,zip_code,status,cert_issue_date,airworthiness_date,last_action_date,cancel_date"

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\r\n"), "\r\n")
}

func TestWriter_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ReleasableDrone.csv")

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, []string{wantHeader}, readLines(t, path))
}

func TestWriter_CRLFLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ReleasableDrone.csv")

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Load(domain.DroneRecord{NNumber: "100DR"}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, wantHeader+"\r\n100DR"+strings.Repeat(",", len(domain.ReportHeader)-1)+"\r\n", string(data))
}

func TestWriter_HeaderMatchesDomain(t *testing.T) {
	assert.Equal(t, wantHeader, strings.Join(domain.ReportHeader, ","))
}

func TestWriter_Rows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ReleasableDrone.csv")

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Load(domain.DroneRecord{
		NNumber:        "100DR",
		Mfr:            "ACME, INC",
		Model:          `FALCON "X"`,
		ZipCode:        "78701-1234",
		CertIssueDate:  "2023-01-15",
		TypeRegistrant: "Individual",
	}))
	require.NoError(t, w.Load(domain.DroneRecord{NNumber: "400DR", CancelDate: "2022-01-01"}))
	require.NoError(t, w.Close())

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	assert.Equal(t, wantHeader, lines[0])
	assert.Equal(t, `100DR,,,,,"ACME, INC","FALCON ""X""",,,Individual,,,78701-1234,,2023-01-15,,,`, lines[1])
	assert.Equal(t, "400DR,,,,,,,,,,,,,,,,,2022-01-01", lines[2])
}

func TestWriter_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ReleasableDrone.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale\nstale\nstale\n"), 0o644))

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, []string{wantHeader}, readLines(t, path))
}

func TestCreate_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "ReleasableDrone.csv")

	_, err := Create(path)
	require.Error(t, err)

	var werr *WriteError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, path, werr.Path)
}
