package postgres

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mazzari/invoicing-api/internal/domain/entity"
)

// Wire-format records for the hosted backend. The database stores every field
// name lowercase (invoicenumber, businessname, bankaccountnumber, ...) while
// the in-memory model is mixed case. These structs are the explicit
// bidirectional schema table for that casing transform; every field, nested
// structures included, must round-trip losslessly through them.

type businessInfoRecord struct {
	ID                int    `json:"id"`
	BusinessName      string `json:"businessname"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	ABN               string `json:"abn,omitempty"`
	LogoURL           string `json:"logourl,omitempty"`
	BankAccountNumber string `json:"bankaccountnumber,omitempty"`
	BankBSB           string `json:"bankbsb,omitempty"`
}

type clientInfoRecord struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type serviceItemRecord struct {
	ID          string          `json:"id"`
	Service     string          `json:"service"`
	Description string          `json:"description,omitempty"`
	Dates       []string        `json:"dates"` // ISO 8601 instants, one per visit
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Total       decimal.Decimal `json:"total"`
}

func toBusinessRecord(info entity.BusinessInfo) businessInfoRecord {
	return businessInfoRecord{
		ID:                info.ID,
		BusinessName:      info.BusinessName,
		Email:             info.Email,
		Phone:             info.Phone,
		Address:           info.Address,
		ABN:               info.ABN,
		LogoURL:           info.LogoURL,
		BankAccountNumber: info.BankAccountNumber,
		BankBSB:           info.BankBSB,
	}
}

func fromBusinessRecord(rec businessInfoRecord) entity.BusinessInfo {
	return entity.BusinessInfo{
		ID:                rec.ID,
		BusinessName:      rec.BusinessName,
		Email:             rec.Email,
		Phone:             rec.Phone,
		Address:           rec.Address,
		ABN:               rec.ABN,
		LogoURL:           rec.LogoURL,
		BankAccountNumber: rec.BankAccountNumber,
		BankBSB:           rec.BankBSB,
	}
}

func toClientRecord(info entity.ClientInfo) clientInfoRecord {
	return clientInfoRecord{
		ID:      info.ID,
		Name:    info.Name,
		Email:   info.Email,
		Phone:   info.Phone,
		Address: info.Address,
	}
}

func fromClientRecord(rec clientInfoRecord) entity.ClientInfo {
	return entity.ClientInfo{
		ID:      rec.ID,
		Name:    rec.Name,
		Email:   rec.Email,
		Phone:   rec.Phone,
		Address: rec.Address,
	}
}

func toItemRecords(items []entity.ServiceItem) []serviceItemRecord {
	recs := make([]serviceItemRecord, 0, len(items))
	for _, it := range items {
		dates := make([]string, 0, len(it.Dates))
		for _, d := range it.Dates {
			dates = append(dates, d.Format(time.RFC3339))
		}
		recs = append(recs, serviceItemRecord{
			ID:          it.ID,
			Service:     it.Service,
			Description: it.Description,
			Dates:       dates,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Total:       it.Total,
		})
	}
	return recs
}

func fromItemRecords(recs []serviceItemRecord) ([]entity.ServiceItem, error) {
	items := make([]entity.ServiceItem, 0, len(recs))
	for _, rec := range recs {
		dates := make([]time.Time, 0, len(rec.Dates))
		for _, s := range rec.Dates {
			d, err := time.Parse(time.RFC3339, s)
			if err != nil {
				return nil, fmt.Errorf("parse visit date %q: %w", s, err)
			}
			dates = append(dates, d)
		}
		items = append(items, entity.ServiceItem{
			ID:          rec.ID,
			Service:     rec.Service,
			Description: rec.Description,
			Dates:       dates,
			Quantity:    rec.Quantity,
			Rate:        rec.Rate,
			Total:       rec.Total,
		})
	}
	return items, nil
}
