// Package domain models FAA aircraft registration data and the drone report
// derived from it.
//
// # Data Source
//
// The FAA publishes its Releasable Aircraft database as a single zip archive at
// https://registry.faa.gov/database/ReleasableAircraft.zip. The field layout is
// documented in ardata.pdf, which ships inside the archive. Three members are
// used here:
//
//	ACFTREF.txt  aircraft manufacturer/model reference, keyed by CODE
//	MASTER.txt   currently registered aircraft
//	DEREG.txt    deregistered aircraft
//
// # FAA Text Conventions
//
// Every member is comma-delimited with a header line. Every line, header
// included, ends with a trailing comma, so the last column is always empty and
// is dropped before use. Fields are space-padded to fixed widths and are
// trimmed. Some files start with a UTF-8 byte-order mark.
//
// Header names are normalized into identifiers by [github.com/couchcryptid/faa-drone-registry/internal/table.TidyHeader]:
//
//	"TYPE-ACFT"       →  "type_acft"
//	"MODE S CODE HEX" →  "mode_s_code_hex"
//	"OTHER NAMES(1)"  →  "other_names1"
//
// MASTER.txt and DEREG.txt describe the same things under different names:
//
//	MASTER            DEREG
//	type_registrant   indicator_group
//	city              city_mail
//	state             state_abbrev_mail
//	zip_code          zip_code_mail
//	last_action_date  last_act_date
//	(none)            cancel_date
//
// DEREG.txt carries no aircraft or engine type columns.
//
// Dates:
//
//	YYYYMMDD, always eight digits when present, e.g. "20230115".
//	Empty when unknown. Rendered as YYYY-MM-DD.
//
// ZIP codes:
//
//	Five digits, or nine digits without a hyphen ("123456789" → "12345-6789").
//
// # Drones
//
// A drone is a rotorcraft (TYPE-ACFT "6") with an electric engine (TYPE-ENG
// "10"). The model reference table is filtered to drones once per run and the
// registration tables are joined against it by MFR MDL CODE. See [IsDrone].
package domain
