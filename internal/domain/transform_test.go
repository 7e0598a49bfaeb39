package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testNNumber = "N100DR"
	testCode    = "A1"
)

func testModelReference() ModelReference {
	return ModelReference{
		Code:     testCode,
		Mfr:      "Acme",
		Model:    "Falcon",
		TypeAcft: DroneAircraftType,
		TypeEng:  DroneEngineType,
		NoEng:    "1",
		AcWeight: "CLASS1",
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"eight digits", "20230115", "2023-01-15"},
		{"leap day", "20240229", "2024-02-29"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatDate_Invalid(t *testing.T) {
	for _, input := range []string{"2023011", "202301150", "2023-01-15", "20231315", "abcdefgh", "20230230"} {
		t.Run(input, func(t *testing.T) {
			_, err := FormatDate(input)
			require.Error(t, err)

			var dateErr *DateFormatError
			require.ErrorAs(t, err, &dateErr)
			assert.Equal(t, input, dateErr.Value)
		})
	}
}

func TestFormatZip(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"nine digits", "123456789", "12345-6789"},
		{"five digits", "12345", "12345"},
		{"empty", "", ""},
		{"already hyphenated", "12345-6789", "12345-6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatZip(tt.input))
		})
	}
}

func TestIsDrone(t *testing.T) {
	tests := []struct {
		name     string
		acft     string
		eng      string
		expected bool
	}{
		{"rotorcraft electric", "6", "10", true},
		{"rotorcraft piston", "6", "1", false},
		{"fixed wing electric", "4", "10", false},
		{"padded engine code", "6", "100", false},
		{"padded aircraft code", "66", "10", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDrone(tt.acft, tt.eng))
		})
	}
}

func TestCodeTables(t *testing.T) {
	assert.Equal(t, "Individual", RegistrantType("1"))
	assert.Equal(t, "LLC", RegistrantType("7"))
	assert.Empty(t, RegistrantType("6"))
	assert.Empty(t, RegistrantType(""))

	assert.Equal(t, "Valid", StatusLabel("V"))
	assert.Equal(t, "Registration Expired", StatusLabel("13"))
	assert.Equal(t, "Invalid", StatusLabel(""))
	assert.Empty(t, StatusLabel("Q"))
	assert.Len(t, statusCodes, 41)
	assert.Len(t, registrantTypes, 8)
}

func TestFromActive(t *testing.T) {
	reg := ActiveRegistration{
		NNumber:        testNNumber,
		SerialNumber:   "SN-1",
		MfrMdlCode:     testCode,
		TypeRegistrant: "3",
		City:           "AUSTIN",
		State:          "TX",
		ZipCode:        "787011234",
		LastActionDate: "20230301",
		CertIssueDate:  "20230115",
		TypeAircraft:   DroneAircraftType,
		TypeEngine:     DroneEngineType,
		StatusCode:     "V",
		ModeSCode:      "51234567",
		AirWorthDate:   "",
		ModeSCodeHex:   "A1B2C3",
	}

	got, err := FromActive(reg, testModelReference())
	require.NoError(t, err)

	want := DroneRecord{
		NNumber:           testNNumber,
		SerialNumber:      "SN-1",
		ModeSCode:         "51234567",
		ModeSCodeHex:      "A1B2C3",
		MfrMdlCode:        testCode,
		Mfr:               "Acme",
		Model:             "Falcon",
		NoEng:             "1",
		AcWeight:          "CLASS1",
		TypeRegistrant:    "Corporation",
		City:              "AUSTIN",
		State:             "TX",
		ZipCode:           "78701-1234",
		Status:            "Valid",
		CertIssueDate:     "2023-01-15",
		AirworthinessDate: "",
		LastActionDate:    "2023-03-01",
		CancelDate:        "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("active projection mismatch (-want +got):\n%s", diff)
	}
}

func TestFromActive_BadDate(t *testing.T) {
	reg := ActiveRegistration{NNumber: testNNumber, CertIssueDate: "2023011"}

	_, err := FromActive(reg, testModelReference())
	require.Error(t, err)

	var dateErr *DateFormatError
	require.ErrorAs(t, err, &dateErr)
	assert.Contains(t, err.Error(), testNNumber)
	assert.Contains(t, err.Error(), "cert_issue_date")
}

func TestFromDeregistered(t *testing.T) {
	reg := DeregisteredRegistration{
		NNumber:         testNNumber,
		SerialNumber:    "SN-2",
		MfrMdlCode:      testCode,
		StatusCode:      "",
		CityMail:        "DENVER",
		StateAbbrevMail: "CO",
		ZipCodeMail:     "80202",
		AirWorthDate:    "20210510",
		CancelDate:      "20220101",
		ModeSCode:       "50000001",
		IndicatorGroup:  "1",
		LastActDate:     "20220102",
		CertIssueDate:   "20210501",
		ModeSCodeHex:    "A00001",
	}

	got, err := FromDeregistered(reg, testModelReference())
	require.NoError(t, err)

	assert.Equal(t, "2022-01-01", got.CancelDate)
	assert.Equal(t, "2022-01-02", got.LastActionDate)
	assert.Equal(t, "2021-05-10", got.AirworthinessDate)
	assert.Equal(t, "Individual", got.TypeRegistrant)
	assert.Equal(t, "Invalid", got.Status)
	assert.Equal(t, "DENVER", got.City)
	assert.Equal(t, "CO", got.State)
	assert.Equal(t, "80202", got.ZipCode)
	assert.Equal(t, "Acme", got.Mfr)
	assert.Equal(t, "Falcon", got.Model)
}

func TestFromDeregistered_BadCancelDate(t *testing.T) {
	reg := DeregisteredRegistration{NNumber: testNNumber, CancelDate: "2022-01-01"}

	_, err := FromDeregistered(reg, testModelReference())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancel_date")
}
