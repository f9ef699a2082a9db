package shipstation

type Address struct {
	Name        string `json:"name,omitempty"`
	Company     string `json:"company,omitempty"`
	Street1     string `json:"street1,omitempty"`
	Street2     string `json:"street2,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	Country     string `json:"country,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Residential *bool  `json:"residential,omitempty"`
}

type Weight struct {
	Value *float64 `json:"value,omitempty"`
	Units string   `json:"units,omitempty"`
}

type OrderItem struct {
	OrderItemID int64    `json:"orderItemId,omitempty"`
	LineItemKey string   `json:"lineItemKey,omitempty"`
	SKU         string   `json:"sku,omitempty"`
	Name        string   `json:"name,omitempty"`
	Weight      *Weight  `json:"weight,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unitPrice,omitempty"`
}

type Order struct {
	OrderID                  int64          `json:"orderId,omitempty"`
	OrderNumber              string         `json:"orderNumber,omitempty"`
	OrderKey                 string         `json:"orderKey,omitempty"`
	OrderDate                string         `json:"orderDate,omitempty"`
	CreateDate               string         `json:"createDate,omitempty"`
	OrderStatus              string         `json:"orderStatus,omitempty"`
	CustomerEmail            string         `json:"customerEmail,omitempty"`
	BillTo                   *Address       `json:"billTo,omitempty"`
	ShipTo                   *Address       `json:"shipTo,omitempty"`
	Items                    []OrderItem    `json:"items,omitempty"`
	OrderTotal               *float64       `json:"orderTotal,omitempty"`
	AmountPaid               *float64       `json:"amountPaid,omitempty"`
	RequestedShippingService string         `json:"requestedShippingService,omitempty"`
	CarrierCode              string         `json:"carrierCode,omitempty"`
	ServiceCode              string         `json:"serviceCode,omitempty"`
	ShipDate                 string         `json:"shipDate,omitempty"`
	Weight                   *Weight        `json:"weight,omitempty"`
	AdvancedOptions          map[string]any `json:"advancedOptions,omitempty"`
}

type OrdersResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total,omitempty"`
	Page   int     `json:"page,omitempty"`
	Pages  int     `json:"pages,omitempty"`
}

type Shipment struct {
	ShipmentID     int64    `json:"shipmentId,omitempty"`
	OrderID        int64    `json:"orderId,omitempty"`
	OrderNumber    string   `json:"orderNumber,omitempty"`
	CustomerEmail  string   `json:"customerEmail,omitempty"`
	CreateDate     string   `json:"createDate,omitempty"`
	ShipDate       string   `json:"shipDate,omitempty"`
	ShipmentCost   *float64 `json:"shipmentCost,omitempty"`
	InsuranceCost  *float64 `json:"insuranceCost,omitempty"`
	TrackingNumber string   `json:"trackingNumber,omitempty"`
	CarrierCode    string   `json:"carrierCode,omitempty"`
	ServiceCode    string   `json:"serviceCode,omitempty"`
	Voided         bool     `json:"voided,omitempty"`
	ShipTo         *Address `json:"shipTo,omitempty"`
	Weight         *Weight  `json:"weight,omitempty"`
}

type ShipmentsResponse struct {
	Shipments []Shipment `json:"shipments"`
	Total     int        `json:"total,omitempty"`
	Page      int        `json:"page,omitempty"`
	Pages     int        `json:"pages,omitempty"`
}

type Store struct {
	StoreID   int64  `json:"storeId"`
	StoreName string `json:"storeName"`
	Active    bool   `json:"active,omitempty"`
}
