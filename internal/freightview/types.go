package freightview

// Model is the shipments listing returned by the FreightView API.
type Model struct {
	Shipments []Shipment `json:"shipments"`
}

type Shipment struct {
	ShipmentID    string     `json:"shipmentId"`
	Direction     string     `json:"direction"`
	Status        string     `json:"status"`
	Locations     []Location `json:"locations,omitempty"`
	Tracking      Tracking   `json:"tracking"`
	SelectedQuote *Quote     `json:"selectedQuote,omitempty"`
	Equipment     *Equipment `json:"equipment,omitempty"`
}

type Location struct {
	Company      string   `json:"company,omitempty"`
	ContactEmail string   `json:"contactEmail,omitempty"`
	RefNums      []RefNum `json:"refNums,omitempty"`
}

type RefNum struct {
	Type  string `json:"type,omitempty"`
	Value string `json:"value,omitempty"`
}

type Tracking struct {
	TrackingNumber       string `json:"trackingNumber,omitempty"`
	DeliveryDateEstimate string `json:"deliveryDateEstimate,omitempty"`
	LastUpdatedDate      string `json:"lastUpdatedDate,omitempty"`
}

type Quote struct {
	AssetCarrierName string   `json:"assetCarrierName,omitempty"`
	Amount           *float64 `json:"amount,omitempty"`
}

type Equipment struct {
	Description string   `json:"description,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
}
