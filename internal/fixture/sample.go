package fixture

import "github.com/couchcryptid/faa-drone-registry/internal/domain"

// Sample returns a small archive covering the interesting cases: active and
// deregistered drones, a non-drone sharing the archive, a drone with no model
// reference, a short row and a padded ZIP+4.
func Sample() ([]byte, error) {
	ref := ModelReference().WithBOM().
		Add(map[string]string{
			"code": "A1", "mfr": "ACME AERO                     ", "model": "FALCON X4          ",
			"type_acft": domain.DroneAircraftType, "type_eng": domain.DroneEngineType,
			"no_eng": "04", "ac_weight": "CLASS 1",
		}).
		Add(map[string]string{
			"code": "B7", "mfr": "SKYWORKS", "model": "HEXA 6",
			"type_acft": domain.DroneAircraftType, "type_eng": domain.DroneEngineType,
			"no_eng": "06", "ac_weight": "CLASS 2",
		}).
		Add(map[string]string{
			"code": "C172", "mfr": "CESSNA", "model": "172S",
			"type_acft": "4", "type_eng": "1", "no_eng": "01", "ac_weight": "CLASS 1",
		})

	active := Active().
		Add(map[string]string{
			"n_number": "100DR", "serial_number": "FX4-0001", "mfr_mdl_code": "A1",
			"type_registrant": "1", "city": "AUSTIN", "state": "TX", "zip_code": "787011234",
			"last_action_date": "20240301", "cert_issue_date": "20230115",
			"type_aircraft": domain.DroneAircraftType, "type_engine": domain.DroneEngineType,
			"status_code": "V", "mode_s_code": "51234567", "air_worth_date": "20230110",
			"mode_s_code_hex": "A5B4C3",
		}).
		Add(map[string]string{
			"n_number": "200DR", "serial_number": "HX6-0042", "mfr_mdl_code": "Z9",
			"type_registrant": "3", "city": "RENO", "state": "NV", "zip_code": "89501",
			"type_aircraft": domain.DroneAircraftType, "type_engine": domain.DroneEngineType,
			"status_code": "V",
		}).
		Add(map[string]string{
			"n_number": "172SP", "serial_number": "17281234", "mfr_mdl_code": "C172",
			"type_registrant": "1", "city": "WICHITA", "state": "KS", "zip_code": "67202",
			"type_aircraft": "4", "type_engine": "1", "status_code": "V",
		}).
		AddRaw("300DR,SHORT,A1,")

	dereg := Deregistered().
		Add(map[string]string{
			"n_number": "400DR", "serial_number": "HX6-0007", "mfr_mdl_code": "B7",
			"status_code": "", "city_mail": "DENVER", "state_abbrev_mail": "CO",
			"zip_code_mail": "80202", "air_worth_date": "20210510", "cancel_date": "20220101",
			"mode_s_code": "50000001", "indicator_group": "7", "last_act_date": "20220102",
			"cert_issue_date": "20210501", "mode_s_code_hex": "A00001",
		})

	return Archive(ref, active, dereg)
}
