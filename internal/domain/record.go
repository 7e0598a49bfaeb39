package domain

// ModelReference is one row of ACFTREF.txt.
type ModelReference struct {
	Code     string `csv:"code"`
	Mfr      string `csv:"mfr"`
	Model    string `csv:"model"`
	TypeAcft string `csv:"type_acft"`
	TypeEng  string `csv:"type_eng"`
	NoEng    string `csv:"no_eng"`
	AcWeight string `csv:"ac_weight"` // weight class, e.g. "CLASS 1"
}

// ActiveRegistration is one row of MASTER.txt.
type ActiveRegistration struct {
	NNumber        string `csv:"n_number"`
	SerialNumber   string `csv:"serial_number"`
	MfrMdlCode     string `csv:"mfr_mdl_code"`
	TypeRegistrant string `csv:"type_registrant"`
	City           string `csv:"city"`
	State          string `csv:"state"`
	ZipCode        string `csv:"zip_code"`
	LastActionDate string `csv:"last_action_date"`
	CertIssueDate  string `csv:"cert_issue_date"`
	TypeAircraft   string `csv:"type_aircraft"`
	TypeEngine     string `csv:"type_engine"`
	StatusCode     string `csv:"status_code"`
	ModeSCode      string `csv:"mode_s_code"`
	AirWorthDate   string `csv:"air_worth_date"`
	ModeSCodeHex   string `csv:"mode_s_code_hex"`
}

// DeregisteredRegistration is one row of DEREG.txt. Owner fields carry the
// mailing address.
type DeregisteredRegistration struct {
	NNumber         string `csv:"n_number"`
	SerialNumber    string `csv:"serial_number"`
	MfrMdlCode      string `csv:"mfr_mdl_code"`
	StatusCode      string `csv:"status_code"`
	CityMail        string `csv:"city_mail"`
	StateAbbrevMail string `csv:"state_abbrev_mail"`
	ZipCodeMail     string `csv:"zip_code_mail"`
	AirWorthDate    string `csv:"air_worth_date"`
	CancelDate      string `csv:"cancel_date"`
	ModeSCode       string `csv:"mode_s_code"`
	IndicatorGroup  string `csv:"indicator_group"` // registrant type
	LastActDate     string `csv:"last_act_date"`
	CertIssueDate   string `csv:"cert_issue_date"`
	ModeSCodeHex    string `csv:"mode_s_code_hex"`
}

// DroneRecord is one row of the drone report. Field order is column order.
type DroneRecord struct {
	NNumber           string `csv:"n_number"`
	SerialNumber      string `csv:"serial_number"`
	ModeSCode         string `csv:"mode_s_code"`
	ModeSCodeHex      string `csv:"mode_s_code_hex"`
	MfrMdlCode        string `csv:"mfr_mdl_code"`
	Mfr               string `csv:"mfr"`
	Model             string `csv:"model"`
	NoEng             string `csv:"no_eng"`
	AcWeight          string `csv:"ac_weight"`
	TypeRegistrant    string `csv:"type_registrant"`
	City              string `csv:"city"`
	State             string `csv:"state"`
	ZipCode           string `csv:"zip_code"`
	Status            string `csv:"status"`
	CertIssueDate     string `csv:"cert_issue_date"`
	AirworthinessDate string `csv:"airworthiness_date"`
	LastActionDate    string `csv:"last_action_date"`
	CancelDate        string `csv:"cancel_date"`
}

// ReportHeader is the header line of the drone report.
var ReportHeader = []string{
	"n_number",
	"serial_number",
	"mode_s_code",
	"mode_s_code_hex",
	"mfr_mdl_code",
	"mfr",
	"model",
	"no_eng",
	"ac_weight",
	"type_registrant",
	"city",
	"state",
	"zip_code",
	"status",
	"cert_issue_date",
	"airworthiness_date",
	"last_action_date",
	"cancel_date",
}

// Member names inside ReleasableAircraft.zip.
const (
	ModelReferenceMember = "ACFTREF.txt"
	ActiveMember         = "MASTER.txt"
	DeregisteredMember   = "DEREG.txt"
)
