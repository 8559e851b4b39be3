package lca

import "time"

func wage(v float64) *float64 { return &v }

// FallbackPostings returns a fresh copy of the static posting set served when
// the live table cannot be read.
func FallbackPostings() []Posting {
	out := make([]Posting, len(fallbackPostings))
	copy(out, fallbackPostings)
	return out
}

var fallbackPostings = []Posting{
	{
		ID: "8c6f2b1e-3d1a-4f57-9a0e-1b2c3d4e5f01",
		Record: Record{
			JobTitle:           "SAP Ariba Functional Consultant",
			LCANumber:          "I-200-25015-123456",
			VisaType:           VisaH1B,
			EmployerName:       "Northbridge Enterprise Consulting LLC",
			WageRateFrom:       118000,
			WageRateTo:         wage(135000),
			WageUnit:           "Year",
			PrevailingWage:     112000,
			WorksiteAddress:    "200 Park Avenue, Suite 1700",
			WorksiteCity:       "New York",
			WorksiteState:      "NY",
			WorksitePostalCode: "10166",
			FullTime:           true,
			BeginDate:          "2025-02-01",
			EndDate:            "2028-01-31",
			PostingStartDate:   "2025-01-15",
			PostingEndDate:     "2025-01-29",
			Status:             StatusCertified,
		},
		BlockchainHash: "3f1d0b9a6e7c2f44a1b8d5e6c7f80912a3b4c5d6e7f8091a2b3c4d5e6f708192",
		CreatedAt:      time.Date(2025, 1, 15, 14, 0, 0, 0, time.UTC),
	},
	{
		ID: "8c6f2b1e-3d1a-4f57-9a0e-1b2c3d4e5f02",
		Record: Record{
			JobTitle:           "AI/ML Solutions Architect",
			LCANumber:          "I-200-25034-234567",
			VisaType:           VisaH1B,
			EmployerName:       "Northbridge Enterprise Consulting LLC",
			WageRateFrom:       152000,
			WageRateTo:         wage(178000),
			WageUnit:           "Year",
			PrevailingWage:     147500,
			WorksiteAddress:    "101 California Street, Floor 24",
			WorksiteCity:       "San Francisco",
			WorksiteState:      "CA",
			WorksitePostalCode: "94111",
			FullTime:           true,
			BeginDate:          "2025-03-01",
			EndDate:            "2028-02-29",
			PostingStartDate:   "2025-02-03",
			PostingEndDate:     "2025-02-17",
			Status:             StatusCertified,
		},
		BlockchainHash: "a7c41e0f92b3d58e6f1a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f71",
		CreatedAt:      time.Date(2025, 2, 3, 9, 30, 0, 0, time.UTC),
	},
	{
		ID: "8c6f2b1e-3d1a-4f57-9a0e-1b2c3d4e5f03",
		Record: Record{
			JobTitle:           "SAP S/4HANA Finance Consultant",
			LCANumber:          "I-200-25051-345678",
			VisaType:           VisaE3,
			EmployerName:       "Northbridge Enterprise Consulting LLC",
			WageRateFrom:       126000,
			WageRateTo:         nil,
			WageUnit:           "Year",
			PrevailingWage:     121300,
			WorksiteAddress:    "1201 Elm Street, Suite 3300",
			WorksiteCity:       "Dallas",
			WorksiteState:      "TX",
			WorksitePostalCode: "75270",
			FullTime:           true,
			BeginDate:          "2025-03-15",
			EndDate:            "2027-03-14",
			PostingStartDate:   "2025-02-20",
			PostingEndDate:     "2025-03-06",
			Status:             StatusCertified,
		},
		BlockchainHash: "c2e9f1a0b3d4c5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e",
		CreatedAt:      time.Date(2025, 2, 20, 16, 45, 0, 0, time.UTC),
	},
	{
		ID: "8c6f2b1e-3d1a-4f57-9a0e-1b2c3d4e5f04",
		Record: Record{
			JobTitle:           "Cloud Data Engineer",
			LCANumber:          "I-200-25064-456789",
			VisaType:           VisaH1B1,
			EmployerName:       "Northbridge Enterprise Consulting LLC",
			WageRateFrom:       64.5,
			WageRateTo:         wage(72),
			WageUnit:           "Hour",
			PrevailingWage:     61.25,
			WorksiteAddress:    "500 W Madison Street, Suite 1000",
			WorksiteCity:       "Chicago",
			WorksiteState:      "IL",
			WorksitePostalCode: "60661",
			FullTime:           true,
			BeginDate:          "2025-04-01",
			EndDate:            "2026-03-31",
			PostingStartDate:   "2025-03-05",
			PostingEndDate:     "2025-03-19",
			Status:             StatusPending,
		},
		BlockchainHash: "e5b8a1c3d2f4e6a7b8c9d0e1f2a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5",
		CreatedAt:      time.Date(2025, 3, 5, 11, 15, 0, 0, time.UTC),
	},
	{
		ID: "8c6f2b1e-3d1a-4f57-9a0e-1b2c3d4e5f05",
		Record: Record{
			JobTitle:           "SAP BTP Integration Developer",
			LCANumber:          "I-200-25077-567890",
			VisaType:           VisaH1B,
			EmployerName:       "Northbridge Enterprise Consulting LLC",
			WageRateFrom:       109000,
			WageRateTo:         wage(124000),
			WageUnit:           "Year",
			PrevailingWage:     104800,
			WorksiteAddress:    "1 Alliance Center, 3500 Lenox Road",
			WorksiteCity:       "Atlanta",
			WorksiteState:      "GA",
			WorksitePostalCode: "30326",
			FullTime:           true,
			BeginDate:          "2025-04-15",
			EndDate:            "2028-04-14",
			PostingStartDate:   "2025-03-18",
			PostingEndDate:     "2025-04-01",
			Status:             StatusCertified,
		},
		BlockchainHash: "0b7d3e5f9a1c2e4f6a8b0c1d2e3f405162738495a6b7c8d9e0f1a2b3c4d5e6f7",
		CreatedAt:      time.Date(2025, 3, 18, 13, 20, 0, 0, time.UTC),
	},
}
