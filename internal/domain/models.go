package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Deductee represents a party from whose payments TDS is withheld.
type Deductee struct {
	ID            uuid.UUID        `db:"id" json:"id"`
	Name          string           `db:"name" json:"name"`
	PAN           string           `db:"pan" json:"pan"`
	Category      DeducteeCategory `db:"category" json:"category"`
	TDSSection    string           `db:"tds_section" json:"tds_section"`
	Rate          float64          `db:"rate" json:"rate"`
	Threshold     float64          `db:"threshold" json:"threshold"`
	TotalDeducted float64          `db:"total_deducted" json:"total_deducted"`
	Status        DeducteeStatus   `db:"status" json:"status"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time        `db:"updated_at" json:"updated_at"`
}

// ComplianceItem represents a single filing obligation tracked on the
// compliance dashboard.
type ComplianceItem struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	Title       string           `db:"title" json:"title"`
	Status      ComplianceStatus `db:"status" json:"status"`
	DueDate     *time.Time       `db:"due_date" json:"due_date"`
	LastUpdated *time.Time       `db:"last_updated" json:"last_updated"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
}

// SalesVoucher represents a sales invoice together with its simulated
// GSTR-1/GSTR-2A filing and acceptance states. The matching status is
// derived, never stored.
type SalesVoucher struct {
	ID             uuid.UUID   `db:"id" json:"id"`
	VoucherNo      string      `db:"voucher_no" json:"voucher_no"`
	PartyGSTIN     string      `db:"party_gstin" json:"party_gstin"`
	InvoiceAmount  float64     `db:"invoice_amount" json:"invoice_amount"`
	TaxableAmount  float64     `db:"taxable_amount" json:"taxable_amount"`
	CGST           float64     `db:"cgst" json:"cgst"`
	SGST           float64     `db:"sgst" json:"sgst"`
	IGST           float64     `db:"igst" json:"igst"`
	Cess           float64     `db:"cess" json:"cess"`
	GSTR1Status    GSTR1Status `db:"gstr1_status" json:"gstr1_status"`
	GSTR2Status    GSTR2Status `db:"gstr2_status" json:"gstr2_status"`
	EInvoiceStatus string      `db:"einvoice_status" json:"einvoice_status"`
	EWayBillStatus string      `db:"ewaybill_status" json:"ewaybill_status"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
}

// TDSReturn26Q stores one Form 26Q quarterly return per assessment year.
// The filing payload (deductor, challans, deductee rows, verification) is
// kept as submitted.
type TDSReturn26Q struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	AssessmentYear string          `db:"assessment_year" json:"assessment_year"`
	Payload        json.RawMessage `db:"payload" json:"payload"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}
