package domain

import "time"

// Classification is the top-level grouping of clients, forming the
// outermost taxonomy folder.
type Classification string

const (
	ClassificationSacofrina Classification = "Sacofrina"
	ClassificationOthers    Classification = "Others"
)

// Classifications lists every classification in taxonomy order.
var Classifications = []Classification{
	ClassificationSacofrina,
	ClassificationOthers,
}

// Payees lists the country-scoped business entities a client can be
// attached to. Used for filtering and path segmentation.
var Payees = []string{
	"Morocco", "Tunisia", "Algeria", "Angola", "Ivory Coast", "Mauritania",
	"Togo", "Guinea", "Mali", "Senegal", "Chad", "Gabon", "Cameroon",
	"Burkina Faso", "Congo",
}

// Sector represents the client's sector of activity
type Sector string

const (
	SectorAgro     Sector = "Agro"
	SectorTextile  Sector = "Textile"
	SectorRefining Sector = "Refining"
)

// BurnerType represents the boiler burner model installed at a client
type BurnerType string

const (
	BurnerSaackeSKVA  BurnerType = "Saacke SKVA"
	BurnerSaackeSKVGA BurnerType = "Saacke SKVGA"
	BurnerWeishaupt   BurnerType = "Weishaupt"
)

// DocType names one of the six fixed document folders inside a month folder
type DocType string

const (
	DocTypeInterventionReport DocType = "Intervention_Report"
	DocTypeServiceOffer       DocType = "Service_Offer"
	DocTypePDROffer           DocType = "PDR_Offer"
	DocTypeServiceBC          DocType = "Service_BC"
	DocTypePDRBC              DocType = "PDR_BC"
	DocTypeDocumentation      DocType = "Documentation"
)

// DocTypes lists every document folder created per month, in folder order.
var DocTypes = []DocType{
	DocTypeInterventionReport,
	DocTypeServiceOffer,
	DocTypePDROffer,
	DocTypeServiceBC,
	DocTypePDRBC,
	DocTypeDocumentation,
}

// IsBC reports whether the doc type is a purchase order, which must be
// filed with reference to a prior offer.
func (d DocType) IsBC() bool {
	return d == DocTypeServiceBC || d == DocTypePDRBC
}

// InterventionStatus represents the confirmation state of an intervention
type InterventionStatus string

const (
	StatusConfirm InterventionStatus = "Confirm"
	StatusPlan    InterventionStatus = "Plan"
	StatusPropose InterventionStatus = "Propose"
)

// InterventionType classifies the work performed during an intervention
type InterventionType string

const (
	InterventionPreventive    InterventionType = "Preventive Maintenance"
	InterventionCorrective    InterventionType = "Corrective Maintenance"
	InterventionCommissioning InterventionType = "Commissioning"
	InterventionEnergyAudit   InterventionType = "Energy Audit"
	InterventionOther         InterventionType = "Other"
)

// Technicians lists the field technicians interventions can be assigned to.
var Technicians = []string{
	"Ferjeni Ramzi", "El Mahi Mouhcine", "Marzouk Abdelhadi",
	"El Najjar Abdessamad", "Moustafa",
}

// Client represents an industrial boiler owner. Records are keyed by the
// client name in clients.json; the name itself is not stored in the record.
// Field names match the persisted snake_case format.
type Client struct {
	Payee               string         `json:"payee"`
	Classification      Classification `json:"classification"`
	Address             string         `json:"address"`
	Contact             string         `json:"contact"`
	Email               string         `json:"email"`
	Sector              Sector         `json:"sector"`
	NumBoilers          int            `json:"num_boilers"`
	BoilerSerialNumbers []string       `json:"boiler_serial_numbers"`
	BurnerType          BurnerType     `json:"burner_type"`
}

// DateFormat is the calendar-date layout used in interventions.json.
const DateFormat = "2006-01-02"

// Intervention is one planned or performed maintenance visit. Records are
// append-only: there is no update or delete operation. JSON keys keep the
// historical display-style names of the interventions.json format.
type Intervention struct {
	Client     string             `json:"Client"`
	Payee      string             `json:"Payee"`
	StartDate  string             `json:"Start Date"`
	EndDate    string             `json:"End Date"`
	Days       int                `json:"Number of Intervention Days"`
	Type       InterventionType   `json:"Type of Intervention"`
	Technician string             `json:"Technician"`
	Status     InterventionStatus `json:"Status"`
}

// Start parses the intervention start date.
func (i *Intervention) Start() (time.Time, error) {
	return time.Parse(DateFormat, i.StartDate)
}

// End parses the intervention end date.
func (i *Intervention) End() (time.Time, error) {
	return time.Parse(DateFormat, i.EndDate)
}

// ValidClassification reports whether c is a known classification.
func ValidClassification(c Classification) bool {
	for _, known := range Classifications {
		if c == known {
			return true
		}
	}
	return false
}

// ValidPayee reports whether p is one of the known payee countries.
func ValidPayee(p string) bool {
	for _, known := range Payees {
		if p == known {
			return true
		}
	}
	return false
}

// ValidDocType reports whether d is one of the six document folders.
func ValidDocType(d DocType) bool {
	for _, known := range DocTypes {
		if d == known {
			return true
		}
	}
	return false
}
