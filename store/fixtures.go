package store

import "lab-dashboard-backend/models"

// fixturePatients returns the demo dataset. Insertion order matters: name
// lookups resolve ties by first match in this order.
func fixturePatients() []models.Patient {
	return []models.Patient{
		{
			ID:             "P1001",
			Name:           "James Wilson",
			DateOfBirth:    "1978-05-12",
			Gender:         "Male",
			Email:          "james.wilson@example.com",
			Phone:          "(555) 123-4567",
			Address:        "123 Main St, Anytown, CA 94501",
			MedicalHistory: []string{"Hypertension", "Type 2 Diabetes"},
			Orders: []models.TestOrder{
				{
					ID:          "O5001",
					PatientID:   "P1001",
					TestName:    "Complete Blood Count (CBC)",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-10",
					Status:      models.StatusCompleted,
					LastUpdated: "2024-07-15",
					Results: &models.TestResult{
						ID:            "R5001",
						OrderID:       "O5001",
						CompletedDate: "2024-07-15",
						ResultSummary: "Normal CBC results with slightly elevated white blood cell count",
						ResultDetails: map[string]models.ResultValue{
							"wbc": {Value: 11.2, Unit: "K/uL", Reference: "4.5-11.0", Flag: "H"},
							"rbc": {Value: 5.1, Unit: "M/uL", Reference: "4.5-5.9"},
							"hgb": {Value: 14.2, Unit: "g/dL", Reference: "13.5-17.5"},
							"hct": {Value: 42, Unit: "%", Reference: "41-50"},
							"plt": {Value: 250, Unit: "K/uL", Reference: "150-450"},
						},
						Interpretation:      "Slight leukocytosis may indicate mild infection or inflammation",
						Flagged:             true,
						RecommendedFollowUp: "Repeat CBC in 2 weeks if symptoms persist",
					},
					Notes: "Patient reported recent cold symptoms",
				},
				{
					ID:          "O5002",
					PatientID:   "P1001",
					TestName:    "Comprehensive Metabolic Panel",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-20",
					Status:      models.StatusInProgress,
					LastUpdated: "2024-07-22",
					Notes:       "Fasting test",
				},
			},
		},
		{
			ID:             "P1002",
			Name:           "Maria Garcia",
			DateOfBirth:    "1985-09-23",
			Gender:         "Female",
			Email:          "maria.garcia@example.com",
			Phone:          "(555) 987-6543",
			Address:        "456 Oak Ave, Somewhere, CA 94502",
			MedicalHistory: []string{"Asthma", "Seasonal allergies"},
			Orders: []models.TestOrder{
				{
					ID:          "O5003",
					PatientID:   "P1002",
					TestName:    "Thyroid Function Panel",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-05",
					Status:      models.StatusCompleted,
					LastUpdated: "2024-07-12",
					Results: &models.TestResult{
						ID:            "R5002",
						OrderID:       "O5003",
						CompletedDate: "2024-07-12",
						ResultSummary: "Thyroid function within normal limits",
						ResultDetails: map[string]models.ResultValue{
							"tsh": {Value: 2.1, Unit: "mIU/L", Reference: "0.4-4.0"},
							"t4":  {Value: 1.2, Unit: "ng/dL", Reference: "0.8-1.8"},
							"t3":  {Value: 120, Unit: "ng/dL", Reference: "80-200"},
						},
						Interpretation: "Normal thyroid function",
					},
				},
				{
					ID:          "O5004",
					PatientID:   "P1002",
					TestName:    "Allergy Panel - Environmental",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-18",
					Status:      models.StatusSampleReceived,
					LastUpdated: "2024-07-21",
					Notes:       "Patient reported worsening seasonal symptoms",
				},
			},
		},
		{
			ID:             "P1003",
			Name:           "Robert Chen",
			DateOfBirth:    "1965-03-15",
			Gender:         "Male",
			Email:          "robert.chen@example.com",
			Phone:          "(555) 234-5678",
			Address:        "789 Pine St, Elsewhere, CA 94503",
			MedicalHistory: []string{"Hyperlipidemia", "Coronary artery disease", "GERD"},
			Orders: []models.TestOrder{
				{
					ID:          "O5005",
					PatientID:   "P1003",
					TestName:    "Lipid Panel",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-06-30",
					Status:      models.StatusCompleted,
					LastUpdated: "2024-07-07",
					Results: &models.TestResult{
						ID:            "R5003",
						OrderID:       "O5005",
						CompletedDate: "2024-07-07",
						ResultSummary: "Elevated LDL cholesterol and triglycerides",
						ResultDetails: map[string]models.ResultValue{
							"totalCholesterol": {Value: 240, Unit: "mg/dL", Reference: "<200", Flag: "H"},
							"ldl":              {Value: 155, Unit: "mg/dL", Reference: "<100", Flag: "H"},
							"hdl":              {Value: 42, Unit: "mg/dL", Reference: ">40"},
							"triglycerides":    {Value: 210, Unit: "mg/dL", Reference: "<150", Flag: "H"},
						},
						Interpretation:      "Hyperlipidemia not adequately controlled with current therapy",
						Flagged:             true,
						RecommendedFollowUp: "Adjust statin dosage and repeat lipid panel in 3 months",
					},
					Notes: "Patient reports compliance with current statin therapy",
				},
				{
					ID:          "O5006",
					PatientID:   "P1003",
					TestName:    "Hemoglobin A1C",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-15",
					Status:      models.StatusKitShipped,
					LastUpdated: "2024-07-16",
					Notes:       "Screening for diabetes",
				},
			},
		},
		{
			ID:             "P1004",
			Name:           "Emily Rodriguez",
			DateOfBirth:    "1992-11-08",
			Gender:         "Female",
			Email:          "emily.rodriguez@example.com",
			Phone:          "(555) 345-6789",
			Address:        "101 Maple Dr, Nowhere, CA 94504",
			MedicalHistory: []string{"Anxiety", "Migraines"},
			Orders: []models.TestOrder{
				{
					ID:          "O5007",
					PatientID:   "P1004",
					TestName:    "Vitamin D, 25-Hydroxy",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-08",
					Status:      models.StatusCompleted,
					LastUpdated: "2024-07-14",
					Results: &models.TestResult{
						ID:            "R5004",
						OrderID:       "O5007",
						CompletedDate: "2024-07-14",
						ResultSummary: "Vitamin D deficiency",
						ResultDetails: map[string]models.ResultValue{
							"vitaminD": {Value: 18, Unit: "ng/mL", Reference: "30-100", Flag: "L"},
						},
						Interpretation:      "Significant Vitamin D deficiency",
						Flagged:             true,
						RecommendedFollowUp: "Start Vitamin D supplementation and recheck in 3 months",
					},
				},
				{
					ID:          "O5008",
					PatientID:   "P1004",
					TestName:    "Thyroid Function Panel",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-20",
					Status:      models.StatusPending,
					LastUpdated: "2024-07-20",
					Notes:       "Check for possible hypothyroidism",
				},
			},
		},
		{
			ID:             "P1005",
			Name:           "David Kim",
			DateOfBirth:    "1973-07-30",
			Gender:         "Male",
			Email:          "david.kim@example.com",
			Phone:          "(555) 456-7890",
			Address:        "202 Cedar Ln, Anyplace, CA 94505",
			MedicalHistory: []string{"Hypertension", "Obesity"},
			Orders: []models.TestOrder{
				{
					ID:          "O5009",
					PatientID:   "P1005",
					TestName:    "Comprehensive Metabolic Panel",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-01",
					Status:      models.StatusCompleted,
					LastUpdated: "2024-07-08",
					Results: &models.TestResult{
						ID:            "R5005",
						OrderID:       "O5009",
						CompletedDate: "2024-07-08",
						ResultSummary: "Elevated liver enzymes",
						ResultDetails: map[string]models.ResultValue{
							"glucose":    {Value: 105, Unit: "mg/dL", Reference: "70-99", Flag: "H"},
							"bun":        {Value: 18, Unit: "mg/dL", Reference: "7-20"},
							"creatinine": {Value: 1.0, Unit: "mg/dL", Reference: "0.6-1.2"},
							"sodium":     {Value: 140, Unit: "mmol/L", Reference: "136-145"},
							"potassium":  {Value: 4.2, Unit: "mmol/L", Reference: "3.5-5.1"},
							"chloride":   {Value: 102, Unit: "mmol/L", Reference: "98-107"},
							"co2":        {Value: 24, Unit: "mmol/L", Reference: "21-32"},
							"calcium":    {Value: 9.5, Unit: "mg/dL", Reference: "8.5-10.2"},
							"protein":    {Value: 7.0, Unit: "g/dL", Reference: "6.0-8.3"},
							"albumin":    {Value: 4.2, Unit: "g/dL", Reference: "3.5-5.0"},
							"bilirubin":  {Value: 0.8, Unit: "mg/dL", Reference: "0.1-1.2"},
							"alt":        {Value: 65, Unit: "U/L", Reference: "7-56", Flag: "H"},
							"ast":        {Value: 72, Unit: "U/L", Reference: "10-40", Flag: "H"},
							"alp":        {Value: 110, Unit: "U/L", Reference: "44-147"},
						},
						Interpretation:      "Mildly elevated liver enzymes may indicate NAFLD",
						Flagged:             true,
						RecommendedFollowUp: "Ultrasound of liver and repeat CMP in 3 months",
					},
					Notes: "Patient advised on lifestyle modifications",
				},
				{
					ID:          "O5010",
					PatientID:   "P1005",
					TestName:    "Lipid Panel",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-18",
					Status:      models.StatusKitDelivered,
					LastUpdated: "2024-07-20",
					Notes:       "Fasting test required",
				},
			},
		},
		{
			ID:             "P1006",
			Name:           "Sarah Johnson",
			DateOfBirth:    "1988-02-14",
			Gender:         "Female",
			Email:          "sarah.johnson@example.com",
			Phone:          "(555) 567-8901",
			Address:        "303 Birch St, Somewhere Else, CA 94506",
			MedicalHistory: []string{"Endometriosis", "Iron deficiency anemia"},
			Orders: []models.TestOrder{
				{
					ID:          "O5011",
					PatientID:   "P1006",
					TestName:    "Iron Panel",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-05",
					Status:      models.StatusCompleted,
					LastUpdated: "2024-07-12",
					Results: &models.TestResult{
						ID:            "R5006",
						OrderID:       "O5011",
						CompletedDate: "2024-07-12",
						ResultSummary: "Iron deficiency anemia",
						ResultDetails: map[string]models.ResultValue{
							"iron":                  {Value: 35, Unit: "ug/dL", Reference: "50-170", Flag: "L"},
							"tibc":                  {Value: 450, Unit: "ug/dL", Reference: "250-450", Flag: "H"},
							"transferrinSaturation": {Value: 8, Unit: "%", Reference: "15-50", Flag: "L"},
							"ferritin":              {Value: 10, Unit: "ng/mL", Reference: "15-150", Flag: "L"},
						},
						Interpretation:      "Results consistent with iron deficiency anemia",
						Flagged:             true,
						RecommendedFollowUp: "Continue iron supplementation and repeat panel in 3 months",
					},
					Notes: "Patient currently on iron supplements",
				},
				{
					ID:          "O5012",
					PatientID:   "P1006",
					TestName:    "Complete Blood Count (CBC)",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-20",
					Status:      models.StatusInProgress,
					LastUpdated: "2024-07-22",
					Notes:       "Monitor response to iron therapy",
				},
			},
		},
		{
			ID:             "P1007",
			Name:           "Michael Thompson",
			DateOfBirth:    "1970-12-05",
			Gender:         "Male",
			Email:          "michael.thompson@example.com",
			Phone:          "(555) 678-9012",
			Address:        "404 Elm St, Elsewhere City, CA 94507",
			MedicalHistory: []string{"Rheumatoid arthritis", "Osteoporosis"},
			Orders: []models.TestOrder{
				{
					ID:          "O5013",
					PatientID:   "P1007",
					TestName:    "Rheumatoid Factor",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-02",
					Status:      models.StatusCompleted,
					LastUpdated: "2024-07-09",
					Results: &models.TestResult{
						ID:            "R5007",
						OrderID:       "O5013",
						CompletedDate: "2024-07-09",
						ResultSummary: "Elevated rheumatoid factor",
						ResultDetails: map[string]models.ResultValue{
							"rheumatoidFactor": {Value: 75, Unit: "IU/mL", Reference: "<14", Flag: "H"},
							"antiCcp":          {Value: 60, Unit: "U/mL", Reference: "<20", Flag: "H"},
						},
						Interpretation:      "Results consistent with active rheumatoid arthritis",
						Flagged:             true,
						RecommendedFollowUp: "Refer to rheumatology for treatment adjustment",
					},
				},
				{
					ID:          "O5014",
					PatientID:   "P1007",
					TestName:    "Vitamin D, 25-Hydroxy",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-15",
					Status:      models.StatusSampleReceived,
					LastUpdated: "2024-07-18",
					Notes:       "Check vitamin D levels for osteoporosis management",
				},
			},
		},
		{
			ID:             "P1008",
			Name:           "Jennifer Lee",
			DateOfBirth:    "1982-08-17",
			Gender:         "Female",
			Email:          "jennifer.lee@example.com",
			Phone:          "(555) 789-0123",
			Address:        "505 Walnut Ave, Anytown, CA 94508",
			MedicalHistory: []string{"Polycystic ovary syndrome", "Insulin resistance"},
			Orders: []models.TestOrder{
				{
					ID:          "O5015",
					PatientID:   "P1008",
					TestName:    "Hormone Panel - Female",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-03",
					Status:      models.StatusCompleted,
					LastUpdated: "2024-07-10",
					Results: &models.TestResult{
						ID:            "R5008",
						OrderID:       "O5015",
						CompletedDate: "2024-07-10",
						ResultSummary: "Hormone imbalance consistent with PCOS",
						ResultDetails: map[string]models.ResultValue{
							"testosterone":     {Value: 65, Unit: "ng/dL", Reference: "15-70"},
							"freeTestosterone": {Value: 12, Unit: "pg/mL", Reference: "0.3-1.9", Flag: "H"},
							"dheas":            {Value: 380, Unit: "ug/dL", Reference: "65-380", Flag: "H"},
							"lh":               {Value: 15, Unit: "mIU/mL", Reference: "2-15", Flag: "H"},
							"fsh":              {Value: 5, Unit: "mIU/mL", Reference: "2-12"},
							"estradiol":        {Value: 110, Unit: "pg/mL", Reference: "30-400"},
						},
						Interpretation:      "Hormonal profile consistent with PCOS",
						Flagged:             true,
						RecommendedFollowUp: "Continue current therapy and follow up in 6 months",
					},
				},
				{
					ID:          "O5016",
					PatientID:   "P1008",
					TestName:    "Hemoglobin A1C",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-17",
					Status:      models.StatusPending,
					LastUpdated: "2024-07-17",
					Notes:       "Monitor for insulin resistance",
				},
			},
		},
		{
			ID:             "P1009",
			Name:           "William Davis",
			DateOfBirth:    "1960-04-22",
			Gender:         "Male",
			Email:          "william.davis@example.com",
			Phone:          "(555) 890-1234",
			Address:        "606 Cherry Ln, Somewhere, CA 94509",
			MedicalHistory: []string{"Chronic kidney disease", "Hypertension", "Type 2 Diabetes"},
			Orders: []models.TestOrder{
				{
					ID:          "O5017",
					PatientID:   "P1009",
					TestName:    "Kidney Function Panel",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-01",
					Status:      models.StatusCompleted,
					LastUpdated: "2024-07-08",
					Results: &models.TestResult{
						ID:            "R5009",
						OrderID:       "O5017",
						CompletedDate: "2024-07-08",
						ResultSummary: "Moderate renal impairment",
						ResultDetails: map[string]models.ResultValue{
							"bun":        {Value: 32, Unit: "mg/dL", Reference: "7-20", Flag: "H"},
							"creatinine": {Value: 1.8, Unit: "mg/dL", Reference: "0.6-1.2", Flag: "H"},
							"egfr":       {Value: 45, Unit: "mL/min/1.73m2", Reference: ">60", Flag: "L"},
							"sodium":     {Value: 138, Unit: "mmol/L", Reference: "136-145"},
							"potassium":  {Value: 4.8, Unit: "mmol/L", Reference: "3.5-5.1"},
							"chloride":   {Value: 104, Unit: "mmol/L", Reference: "98-107"},
							"co2":        {Value: 22, Unit: "mmol/L", Reference: "21-32"},
						},
						Interpretation:      "Stage 3A chronic kidney disease",
						Flagged:             true,
						RecommendedFollowUp: "Nephrology follow-up and repeat panel in 3 months",
					},
					Notes: "Patient advised on dietary restrictions",
				},
				{
					ID:          "O5018",
					PatientID:   "P1009",
					TestName:    "Hemoglobin A1C",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-15",
					Status:      models.StatusKitShipped,
					LastUpdated: "2024-07-16",
					Notes:       "Monitor diabetes control",
				},
			},
		},
		{
			ID:             "P1010",
			Name:           "Olivia Martinez",
			DateOfBirth:    "1995-10-10",
			Gender:         "Female",
			Email:          "olivia.martinez@example.com",
			Phone:          "(555) 901-2345",
			Address:        "707 Spruce Dr, Elsewhere, CA 94510",
			MedicalHistory: []string{"Celiac disease", "Iron deficiency anemia"},
			Orders: []models.TestOrder{
				{
					ID:          "O5019",
					PatientID:   "P1010",
					TestName:    "Celiac Disease Panel",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-05",
					Status:      models.StatusCompleted,
					LastUpdated: "2024-07-12",
					Results: &models.TestResult{
						ID:            "R5010",
						OrderID:       "O5019",
						CompletedDate: "2024-07-12",
						ResultSummary: "Positive celiac disease markers",
						ResultDetails: map[string]models.ResultValue{
							"tTG_IgA":  {Value: 85, Unit: "U/mL", Reference: "<4", Flag: "H"},
							"totalIgA": {Value: 250, Unit: "mg/dL", Reference: "70-400"},
							"dGP_IgA":  {Value: 65, Unit: "U/mL", Reference: "<20", Flag: "H"},
							"dGP_IgG":  {Value: 45, Unit: "U/mL", Reference: "<20", Flag: "H"},
						},
						Interpretation:      "Serological markers strongly positive for celiac disease",
						Flagged:             true,
						RecommendedFollowUp: "Continue strict gluten-free diet and follow up in 6 months",
					},
					Notes: "Patient reports strict adherence to gluten-free diet",
				},
				{
					ID:          "O5020",
					PatientID:   "P1010",
					TestName:    "Vitamin Panel",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-18",
					Status:      models.StatusKitDelivered,
					LastUpdated: "2024-07-20",
					Notes:       "Check for nutritional deficiencies",
				},
			},
		},
		{
			ID:             "P1011",
			Name:           "John Doe",
			DateOfBirth:    "1980-06-15",
			Gender:         "Male",
			Email:          "john.doe@example.com",
			Phone:          "(555) 123-7890",
			Address:        "123 Evergreen Terrace, Springfield, CA 94511",
			MedicalHistory: []string{"Allergic rhinitis", "Mild asthma", "Seasonal allergies"},
			Orders: []models.TestOrder{
				{
					ID:          "O5021",
					PatientID:   "P1011",
					TestName:    "Comprehensive Metabolic Panel",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-22",
					Status:      models.StatusInProgress,
					LastUpdated: "2024-07-24",
					Notes:       "Routine health checkup, fasting required",
				},
				{
					ID:          "O5022",
					PatientID:   "P1011",
					TestName:    "Allergy Panel - Environmental",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-10",
					Status:      models.StatusCompleted,
					LastUpdated: "2024-07-18",
					Results: &models.TestResult{
						ID:            "R5011",
						OrderID:       "O5022",
						CompletedDate: "2024-07-18",
						ResultSummary: "Significant allergic sensitization to multiple environmental allergens",
						ResultDetails: map[string]models.ResultValue{
							"dustMites":   {Value: 3.8, Unit: "kU/L", Reference: "<0.35", Flag: "H"},
							"catDander":   {Value: 2.5, Unit: "kU/L", Reference: "<0.35", Flag: "H"},
							"dogDander":   {Value: 0.8, Unit: "kU/L", Reference: "<0.35", Flag: "H"},
							"grassPollen": {Value: 5.2, Unit: "kU/L", Reference: "<0.35", Flag: "H"},
							"treePollen":  {Value: 4.1, Unit: "kU/L", Reference: "<0.35", Flag: "H"},
							"ragweed":     {Value: 3.9, Unit: "kU/L", Reference: "<0.35", Flag: "H"},
							"mold":        {Value: 0.6, Unit: "kU/L", Reference: "<0.35", Flag: "H"},
						},
						Interpretation:      "Results indicate multiple environmental allergies, particularly to pollens and dust mites",
						Flagged:             true,
						RecommendedFollowUp: "Referral to allergist for consideration of immunotherapy",
					},
					Notes: "Patient reports worsening seasonal symptoms and indoor allergies",
				},
				{
					ID:          "O5023",
					PatientID:   "P1011",
					TestName:    "Lipid Panel",
					TestType:    "Blood",
					OrderedBy:   "Dr. Sarah Reynolds",
					OrderedDate: "2024-07-25",
					Status:      models.StatusPending,
					LastUpdated: "2024-07-25",
					Notes:       "Baseline lipid assessment, fasting required",
				},
			},
		},
	}
}
