package domain

// registrantTypes maps TYPE REGISTRANT (MASTER) and INDICATOR-GROUP (DEREG)
// codes to labels. ardata.pdf, page 1.
var registrantTypes = map[string]string{
	"1": "Individual",
	"2": "Partnership",
	"3": "Corporation",
	"4": "Co-Owned",
	"5": "Government",
	"7": "LLC",
	"8": "Non Citizen Corporation",
	"9": "Non Citizen Co-Owned",
}

// statusCodes maps STATUS CODE values to labels. ardata.pdf, pages 5-7.
var statusCodes = map[string]string{
	"1":  "Triennial Aircraft Registration form was returned by the Post Office as undeliverable",
	"2":  "N-Number Assigned but has not yet been registered",
	"3":  "N-Number assigned as a Non Type Certificated aircraft - but has not yet been registered",
	"4":  "N-Number assigned as import - but has not yet been registered",
	"5":  "Reserved N-Number",
	"6":  "Administratively canceled",
	"7":  "Sale reported",
	"8":  "A second attempt has been made at mailing a Triennial Aircraft Registration form to the owner with no response",
	"9":  "Certificate of Registration has been revoked",
	"10": "N-Number assigned but has not been registered and is pending cancellation",
	"11": "N-Number assigned as a Non Type Certificated (Amateur) but has not been registered that is pending cancellation",
	"12": "N-Number assigned as import but has not been registered that is pending cancellation",
	"13": "Registration Expired",
	"14": "First Notice for ReRegistration/Renewal",
	"15": "Second Notice for ReRegistration/Renewal",
	"16": "Registration Expired - Pending Cancellation",
	"17": "Sale Reported - Pending Cancellation",
	"18": "Sale Reported - Canceled",
	"19": "Registration Pending - Pending Cancellation",
	"20": "Registration Pending - Canceled",
	"21": "Revoked - Pending Cancellation",
	"22": "Revoked - Canceled",
	"23": "Expired Dealer (Pending Cancellation)",
	"24": "Third Notice for ReRegistration/Renewal",
	"25": "First Notice for Registration Renewal",
	"26": "Second Notice for Registration Renewal",
	"27": "Registration Expired",
	"28": "Third Notice for Registration Renewal",
	"29": "Registration Expired - Pending Cancellation",
	"A":  "The Triennial Aircraft Registration form was mailed and has not been returned by the Post Office",
	"D":  "Expired Dealer",
	"E":  "The Certificate of Aircraft Registration was revoked by enforcement action",
	"M":  "Aircraft registered to the manufacturer under their Dealer Certificate",
	"N":  "Non-citizen Corporations which have not returned their flight hour reports",
	"R":  "Registration pending",
	"S":  "Second Triennial Aircraft Registration Form has been mailed and has not been returned by the Post Office ",
	"T":  "Valid - from Trainee",
	"V":  "Valid",
	"X":  "Enforcement Letter",
	"Z":  "Permanent Reserved",
	"":   "Invalid",
}

// RegistrantType returns the label for a registrant type code, or "" if the
// code is unknown.
func RegistrantType(code string) string {
	return registrantTypes[code]
}

// StatusLabel returns the label for a registration status code, or "" if the
// code is unknown. An empty code is "Invalid".
func StatusLabel(code string) string {
	return statusCodes[code]
}
