package cma

// SeedReport returns the default report used when no saved state exists or
// the saved state fails to parse.
func SeedReport() Report {
	return Report{
		CompanyInfo: CompanyInfo{
			Name:         "Sample Trading Co.",
			Address:      "Industrial Area, Phase II",
			BusinessType: "Trading",
		},
		OperatingStatement: []Row{
			{SrNo: "1", Particulars: "Gross Sales", Format: "currency"},
			{SrNo: "2", Particulars: "Less: Excise Duty / GST", Format: "currency"},
			{SrNo: "3", Particulars: "Net Sales", Format: "currency"},
			{SrNo: "4", Particulars: "Cost of Goods Sold", Format: "currency"},
			{SrNo: "5", Particulars: "Gross Profit", Format: "currency"},
			{SrNo: "6", Particulars: "Operating Expenses", Format: "currency"},
			{SrNo: "7", Particulars: "Operating Profit (PBIT)", Format: "currency"},
			{SrNo: "8", Particulars: "Interest", Format: "currency"},
			{SrNo: "9", Particulars: "Profit Before Tax", Format: "currency"},
			{SrNo: "10", Particulars: "Net Profit", Format: "currency"},
		},
		BalanceSheet: []Row{
			{SrNo: "1", Particulars: "Share Capital", Format: "currency"},
			{SrNo: "2", Particulars: "Reserves & Surplus", Format: "currency"},
			{SrNo: "3", Particulars: "Term Loans", Format: "currency"},
			{SrNo: "4", Particulars: "Bank Borrowings (Working Capital)", Format: "currency"},
			{SrNo: "5", Particulars: "Sundry Creditors", Format: "currency"},
			{SrNo: "6", Particulars: "Fixed Assets (Net Block)", Format: "currency"},
			{SrNo: "7", Particulars: "Investments", Format: "currency"},
			{SrNo: "8", Particulars: "Total Current Assets", Format: "currency"},
		},
		CurrentAssets: []Row{
			{SrNo: "1", Particulars: "Raw Materials", Format: "currency"},
			{SrNo: "2", Particulars: "Stock in Process", Format: "currency"},
			{SrNo: "3", Particulars: "Finished Goods", Format: "currency"},
			{SrNo: "4", Particulars: "Receivables", Format: "currency"},
			{SrNo: "5", Particulars: "Cash & Bank Balances", Format: "currency"},
		},
		MPBF: []Row{
			{SrNo: "1", Particulars: "Total Current Assets", Format: "currency"},
			{SrNo: "2", Particulars: "Other Current Liabilities", Format: "currency"},
			{SrNo: "3", Particulars: "Working Capital Gap", Format: "currency"},
			{SrNo: "4", Particulars: "Minimum Stipulated Margin (25% of TCA)", Format: "currency"},
			{SrNo: "5", Particulars: "Maximum Permissible Bank Finance", Format: "currency"},
		},
		FundsFlow: []Row{
			{SrNo: "1", Particulars: "Sources: Net Profit", Format: "currency"},
			{SrNo: "2", Particulars: "Sources: Depreciation", Format: "currency"},
			{SrNo: "3", Particulars: "Sources: Increase in Borrowings", Format: "currency"},
			{SrNo: "4", Particulars: "Uses: Capital Expenditure", Format: "currency"},
			{SrNo: "5", Particulars: "Uses: Increase in Working Capital", Format: "currency"},
		},
		Ratios: []Row{
			{SrNo: "1", Particulars: "Current Ratio", Format: "ratio"},
			{SrNo: "2", Particulars: "Debt-Equity Ratio", Format: "ratio"},
			{SrNo: "3", Particulars: "Net Profit Margin", Format: "percentage"},
			{SrNo: "4", Particulars: "Interest Coverage", Format: "ratio"},
			{SrNo: "5", Particulars: "TOL/TNW", Format: "ratio"},
		},
	}
}

// ExecutiveSummary is the dashboard summary block. Its figures are static
// samples, deliberately not derived from the editable grid.
type ExecutiveSummary struct {
	ProjectedTurnover  float64 `json:"projected_turnover"`
	ProjectedNetProfit float64 `json:"projected_net_profit"`
	PeakMPBF           float64 `json:"peak_mpbf"`
	CurrentRatio       float64 `json:"current_ratio"`
}

// StaticExecutiveSummary returns the sample summary figures.
func StaticExecutiveSummary() ExecutiveSummary {
	return ExecutiveSummary{
		ProjectedTurnover:  25000000,
		ProjectedNetProfit: 1875000,
		PeakMPBF:           4200000,
		CurrentRatio:       1.33,
	}
}
