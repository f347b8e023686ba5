package domain

// Requests and response DTOs for the API surface. Persisted models keep the
// historical JSON key casing; the API itself speaks camelCase.

type CreateClientRequest struct {
	Name                string         `json:"name" validate:"required,max=200"`
	Payee               string         `json:"payee" validate:"required"`
	Classification      Classification `json:"classification" validate:"required,oneof=Sacofrina Others"`
	Address             string         `json:"address"`
	Contact             string         `json:"contact"`
	Email               string         `json:"email" validate:"omitempty,email"`
	Sector              Sector         `json:"sector" validate:"required,oneof=Agro Textile Refining"`
	NumBoilers          int            `json:"numBoilers" validate:"required,gte=1"`
	BoilerSerialNumbers []string       `json:"boilerSerialNumbers"`
	BurnerType          BurnerType     `json:"burnerType" validate:"required,oneof='Saacke SKVA' 'Saacke SKVGA' Weishaupt"`
}

// UpdateClientRequest carries the new field values plus the admin password
// gating the mutation. Classification is fixed at creation time since the
// folder tree cannot be moved.
type UpdateClientRequest struct {
	Password            string     `json:"password" validate:"required"`
	Payee               string     `json:"payee" validate:"required"`
	Address             string     `json:"address"`
	Contact             string     `json:"contact"`
	Email               string     `json:"email" validate:"omitempty,email"`
	Sector              Sector     `json:"sector" validate:"required,oneof=Agro Textile Refining"`
	NumBoilers          int        `json:"numBoilers" validate:"required,gte=1"`
	BoilerSerialNumbers []string   `json:"boilerSerialNumbers"`
	BurnerType          BurnerType `json:"burnerType" validate:"required,oneof='Saacke SKVA' 'Saacke SKVGA' Weishaupt"`
}

type DeleteClientRequest struct {
	Password string `json:"password" validate:"required"`
}

// ClientDTO is a client record together with its map key.
type ClientDTO struct {
	Name                string         `json:"name"`
	Payee               string         `json:"payee"`
	Classification      Classification `json:"classification"`
	Address             string         `json:"address,omitempty"`
	Contact             string         `json:"contact,omitempty"`
	Email               string         `json:"email,omitempty"`
	Sector              Sector         `json:"sector"`
	NumBoilers          int            `json:"numBoilers"`
	BoilerSerialNumbers []string       `json:"boilerSerialNumbers,omitempty"`
	BurnerType          BurnerType     `json:"burnerType"`
}

type ClientListResponse struct {
	Clients []ClientDTO `json:"clients"`
	Message string      `json:"message,omitempty"`
}

// MessageResponse carries the user-facing outcome text of an operation.
type MessageResponse struct {
	Message string `json:"message"`
}

// FileDocumentRequest describes a document upload. The file bytes travel as
// the multipart "file" field; these are the accompanying form values.
type FileDocumentRequest struct {
	ClientName     string         `json:"clientName" validate:"required"`
	Payee          string         `json:"payee" validate:"required"`
	Classification Classification `json:"classification" validate:"required,oneof=Sacofrina Others"`
	Month          string         `json:"month" validate:"required,len=2"`
	DocType        DocType        `json:"docType" validate:"required"`

	// BC-only fields: the offer the purchase order answers.
	OfferType  DocType `json:"offerType" validate:"omitempty,oneof=Service_Offer PDR_Offer"`
	OfferMonth string  `json:"offerMonth" validate:"omitempty,len=2"`
	OfferFile  string  `json:"offerFile"`
}

// DocumentFiledResponse reports where the document landed. LinkedOffer is
// display-only: the BC to offer association is not persisted anywhere.
type DocumentFiledResponse struct {
	Message     string `json:"message"`
	Path        string `json:"path"`
	LinkedOffer string `json:"linkedOffer,omitempty"`
}

type OfferListResponse struct {
	Offers  []string `json:"offers"`
	Message string   `json:"message,omitempty"`
}

type PlanInterventionRequest struct {
	ClientName string             `json:"clientName" validate:"required"`
	Payee      string             `json:"payee" validate:"required"`
	StartDate  string             `json:"startDate" validate:"required"`
	EndDate    string             `json:"endDate" validate:"required"`
	Type       InterventionType   `json:"type" validate:"required,oneof='Preventive Maintenance' 'Corrective Maintenance' Commissioning 'Energy Audit' Other"`
	Technician string             `json:"technician" validate:"required"`
	Status     InterventionStatus `json:"status" validate:"required,oneof=Confirm Plan Propose"`
}

type InterventionDTO struct {
	Client     string             `json:"client"`
	Payee      string             `json:"payee"`
	StartDate  string             `json:"startDate"`
	EndDate    string             `json:"endDate"`
	Days       int                `json:"days"`
	Type       InterventionType   `json:"type,omitempty"`
	Technician string             `json:"technician"`
	Status     InterventionStatus `json:"status"`
}

type InterventionListResponse struct {
	Interventions []InterventionDTO `json:"interventions"`
	Message       string            `json:"message,omitempty"`
}

// SearchRequest selects the taxonomy slice to scan. Months are free-text
// fields and validated on use.
type SearchRequest struct {
	Payees     []string `json:"payees" validate:"required,min=1"`
	Clients    []string `json:"clients" validate:"required,min=1"`
	DocType    DocType  `json:"docType" validate:"required"`
	StartMonth string   `json:"startMonth" validate:"required"`
	EndMonth   string   `json:"endMonth" validate:"required"`
}

// SearchRow is one document found by a taxonomy scan.
type SearchRow struct {
	Client string  `json:"client"`
	Date   string  `json:"date"`
	Type   DocType `json:"type"`
	File   string  `json:"file"`
}

type SearchResponse struct {
	Rows    []SearchRow `json:"rows"`
	Message string      `json:"message,omitempty"`
}

// SummaryRow extends a search row with the per-directory document count.
type SummaryRow struct {
	SearchRow
	Count int `json:"count"`
}

// SummaryResponse carries the result table plus per-month tallies for the
// bar chart.
type SummaryResponse struct {
	Rows        []SummaryRow   `json:"rows"`
	MonthCounts map[string]int `json:"monthCounts"`
	Message     string         `json:"message,omitempty"`
}
