package domain

// DeducteeCategory classifies a deductee for TDS purposes.
type DeducteeCategory string

const (
	CategoryIndividual DeducteeCategory = "individual"
	CategoryCompany    DeducteeCategory = "company"
	CategoryHUF        DeducteeCategory = "huf"
	CategoryFirm       DeducteeCategory = "firm"
	CategoryAOP        DeducteeCategory = "aop"
	CategoryTrust      DeducteeCategory = "trust"
)

// AllowedCategories is the set of valid deductee categories.
var AllowedCategories = map[DeducteeCategory]bool{
	CategoryIndividual: true,
	CategoryCompany:    true,
	CategoryHUF:        true,
	CategoryFirm:       true,
	CategoryAOP:        true,
	CategoryTrust:      true,
}

// DeducteeStatus represents the lifecycle of a deductee record.
type DeducteeStatus string

const (
	DeducteeActive   DeducteeStatus = "active"
	DeducteeInactive DeducteeStatus = "inactive"
)

// ComplianceStatus represents the state of a single filing obligation.
type ComplianceStatus string

const (
	ComplianceCompliant ComplianceStatus = "compliant"
	ComplianceWarning   ComplianceStatus = "warning"
	ComplianceCritical  ComplianceStatus = "critical"
	CompliancePending   ComplianceStatus = "pending"
)

// AllowedComplianceStatuses is the set of valid filing obligation states.
var AllowedComplianceStatuses = map[ComplianceStatus]bool{
	ComplianceCompliant: true,
	ComplianceWarning:   true,
	ComplianceCritical:  true,
	CompliancePending:   true,
}

// GSTR1Status is the supplier-side filing state of a voucher in GSTR-1.
type GSTR1Status string

const (
	GSTR1Filed    GSTR1Status = "Filed"
	GSTR1NotFiled GSTR1Status = "Not Filed"
	GSTR1Pending  GSTR1Status = "Pending"
	GSTR1Error    GSTR1Status = "Error"
)

// AllowedGSTR1Statuses is the set of valid GSTR-1 filing states.
var AllowedGSTR1Statuses = map[GSTR1Status]bool{
	GSTR1Filed:    true,
	GSTR1NotFiled: true,
	GSTR1Pending:  true,
	GSTR1Error:    true,
}

// GSTR2Status is the buyer-side acceptance state of a voucher in GSTR-2A.
type GSTR2Status string

const (
	GSTR2Matched   GSTR2Status = "Matched"
	GSTR2Unmatched GSTR2Status = "Unmatched"
	GSTR2Disputed  GSTR2Status = "Disputed"
	GSTR2Accepted  GSTR2Status = "Accepted"
	GSTR2Rejected  GSTR2Status = "Rejected"
)

// AllowedGSTR2Statuses is the set of valid GSTR-2A acceptance states.
var AllowedGSTR2Statuses = map[GSTR2Status]bool{
	GSTR2Matched:   true,
	GSTR2Unmatched: true,
	GSTR2Disputed:  true,
	GSTR2Accepted:  true,
	GSTR2Rejected:  true,
}

// MatchingStatus is the derived reconciliation classification of a voucher.
type MatchingStatus string

const (
	MatchFully     MatchingStatus = "Fully Matched"
	MatchPartially MatchingStatus = "Partially Matched"
	MatchUnmatched MatchingStatus = "Unmatched"
	MatchDisputed  MatchingStatus = "Disputed"
)
