package domain

import "fmt"

// FromActive projects a MASTER.txt registration joined with its model
// reference into a report row. Cancel date is always empty.
func FromActive(reg ActiveRegistration, ref ModelReference) (DroneRecord, error) {
	dates, err := formatDates(
		dateField{"cert_issue_date", reg.CertIssueDate},
		dateField{"air_worth_date", reg.AirWorthDate},
		dateField{"last_action_date", reg.LastActionDate},
	)
	if err != nil {
		return DroneRecord{}, fmt.Errorf("active %s: %w", reg.NNumber, err)
	}

	return DroneRecord{
		NNumber:           reg.NNumber,
		SerialNumber:      reg.SerialNumber,
		ModeSCode:         reg.ModeSCode,
		ModeSCodeHex:      reg.ModeSCodeHex,
		MfrMdlCode:        reg.MfrMdlCode,
		Mfr:               ref.Mfr,
		Model:             ref.Model,
		NoEng:             ref.NoEng,
		AcWeight:          ref.AcWeight,
		TypeRegistrant:    RegistrantType(reg.TypeRegistrant),
		City:              reg.City,
		State:             reg.State,
		ZipCode:           FormatZip(reg.ZipCode),
		Status:            StatusLabel(reg.StatusCode),
		CertIssueDate:     dates[0],
		AirworthinessDate: dates[1],
		LastActionDate:    dates[2],
	}, nil
}

// FromDeregistered projects a DEREG.txt registration joined with its model
// reference into a report row.
func FromDeregistered(reg DeregisteredRegistration, ref ModelReference) (DroneRecord, error) {
	dates, err := formatDates(
		dateField{"cert_issue_date", reg.CertIssueDate},
		dateField{"air_worth_date", reg.AirWorthDate},
		dateField{"last_act_date", reg.LastActDate},
		dateField{"cancel_date", reg.CancelDate},
	)
	if err != nil {
		return DroneRecord{}, fmt.Errorf("deregistered %s: %w", reg.NNumber, err)
	}

	return DroneRecord{
		NNumber:           reg.NNumber,
		SerialNumber:      reg.SerialNumber,
		ModeSCode:         reg.ModeSCode,
		ModeSCodeHex:      reg.ModeSCodeHex,
		MfrMdlCode:        reg.MfrMdlCode,
		Mfr:               ref.Mfr,
		Model:             ref.Model,
		NoEng:             ref.NoEng,
		AcWeight:          ref.AcWeight,
		TypeRegistrant:    RegistrantType(reg.IndicatorGroup),
		City:              reg.CityMail,
		State:             reg.StateAbbrevMail,
		ZipCode:           FormatZip(reg.ZipCodeMail),
		Status:            StatusLabel(reg.StatusCode),
		CertIssueDate:     dates[0],
		AirworthinessDate: dates[1],
		LastActionDate:    dates[2],
		CancelDate:        dates[3],
	}, nil
}

type dateField struct {
	name  string
	value string
}

func formatDates(fields ...dateField) ([]string, error) {
	out := make([]string, len(fields))
	for i, f := range fields {
		v, err := FormatDate(f.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		out[i] = v
	}
	return out, nil
}
