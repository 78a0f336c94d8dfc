package entity

import "github.com/shopspring/decimal"

// BusinessInfoID is the fixed id of the single business settings row.
// The deployment serves one business, so the record is a singleton.
const BusinessInfoID = 1

// BusinessInfo holds the issuing business details shown on every invoice.
type BusinessInfo struct {
	ID                int
	BusinessName      string
	Email             string
	Phone             string
	Address           string
	ABN               string
	LogoURL           string
	BankAccountNumber string
	BankBSB           string
}

// ClientInfo is the bill-to record captured per invoice.
type ClientInfo struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Address string
}

// DefaultBusinessInfo is returned when no settings row has been saved yet.
func DefaultBusinessInfo() *BusinessInfo {
	return &BusinessInfo{
		ID:           BusinessInfoID,
		BusinessName: "Mazzari Landscape Management",
		Email:        "info@mazzarilandscape.com.au",
		Phone:        "0400 000 000",
		Address:      "Sydney, NSW, Australia",
	}
}

// ServiceCatalogueEntry is a stock service offered when building an invoice.
type ServiceCatalogueEntry struct {
	Service     string
	Description string
	Rate        decimal.Decimal
}

// DefaultServices is the stock landscaping service catalogue with default rates.
func DefaultServices() []ServiceCatalogueEntry {
	return []ServiceCatalogueEntry{
		{Service: "Lawn Maintanance", Description: "Lawn Maintainance of all areas cleaning all common areas and spraying of weeds", Rate: decimal.NewFromInt(180)},
		{Service: "Hedge Trimming", Description: "Hedge and shrub trimming", Rate: decimal.NewFromInt(85)},
		{Service: "Garden Clean Up", Description: "General garden cleanup and waste removal", Rate: decimal.NewFromInt(120)},
		{Service: "Mulching", Description: "Mulch supply and spreading", Rate: decimal.NewFromInt(95)},
		{Service: "Tree Pruning", Description: "Tree pruning and shaping", Rate: decimal.NewFromInt(150)},
		{Service: "Strata Maintenance", Description: "Body corporate grounds maintenance", Rate: decimal.NewFromInt(200)},
		{Service: "Weeding", Description: "Garden bed weeding", Rate: decimal.NewFromInt(55)},
		{Service: "Fertilizing", Description: "Lawn and garden fertilization", Rate: decimal.NewFromInt(75)},
		{Service: "Irrigation Repair", Description: "Irrigation system repairs", Rate: decimal.NewFromInt(90)},
		{Service: "Pressure Washing", Description: "Driveway and path pressure cleaning", Rate: decimal.NewFromInt(110)},
	}
}
