package terminology

// Value sets backing the denominator exclusion checks shared by the
// screening and glycemic measures: hospice, palliative care, frailty with
// advanced illness, and institutional residence.
const (
	HospiceCareAmbulatory      Concept = "HospiceCareAmbulatory"      // 2.16.840.1.113762.1.4.1108.15
	HospiceEncounter           Concept = "HospiceEncounter"           // 2.16.840.1.113883.3.464.1003.1003
	HospiceDiagnosis           Concept = "HospiceDiagnosis"           // 2.16.840.1.113762.1.4.1116.365
	PalliativeCareEncounter    Concept = "PalliativeCareEncounter"    // 2.16.840.1.113883.3.464.1003.101.12.1090
	PalliativeCareIntervention Concept = "PalliativeCareIntervention" // 2.16.840.1.113883.3.464.1003.198.12.1135
	PalliativeCareDiagnosis    Concept = "PalliativeCareDiagnosis"    // 2.16.840.1.113883.3.464.1003.1167
	FrailtyDevice              Concept = "FrailtyDevice"              // 2.16.840.1.113883.3.464.1003.118.12.1300
	FrailtyDiagnosis           Concept = "FrailtyDiagnosis"           // 2.16.840.1.113883.3.464.1003.113.12.1074
	FrailtyEncounter           Concept = "FrailtyEncounter"           // 2.16.840.1.113883.3.464.1003.101.12.1088
	FrailtySymptom             Concept = "FrailtySymptom"             // 2.16.840.1.113883.3.464.1003.113.12.1075
	AdvancedIllness            Concept = "AdvancedIllness"            // 2.16.840.1.113883.3.464.1003.110.12.1082
	DementiaMedications        Concept = "DementiaMedications"        // 2.16.840.1.113883.3.464.1003.196.12.1510
	NursingFacilityVisit       Concept = "NursingFacilityVisit"       // 2.16.840.1.113883.3.464.1003.101.12.1012
	LongTermResidentialCare    Concept = "LongTermResidentialCare"    // 2.16.840.1.113883.3.464.1003.101.12.1014
)

var exclusionValueSets = map[Concept]map[System][]string{
	HospiceCareAmbulatory: {
		CPT: {
			"99377", // Supervision of a hospice patient, 15-29 minutes
			"99378", // Supervision of a hospice patient, 30 minutes or more
		},
		HCPCSLEVELII: {
			"G0182",
		},
		SNOMEDCT: {
			"170935008", // Full care by hospice (finding)
			"170936009", // Shared care - hospice and general practitioner (finding)
			"385763009", // Hospice care (regime/therapy)
		},
	},
	HospiceEncounter: {
		HCPCSLEVELII: {
			"G9473",
			"G9474",
			"G9475",
			"G9476",
			"G9477",
			"G9478",
			"G9479",
			"Q5003", // Hospice care provided in nursing long term care facility
			"Q5004", // Hospice care provided in skilled nursing facility
			"Q5005", // Hospice care provided in inpatient hospital
			"Q5006", // Hospice care provided in inpatient hospice facility
			"Q5007",
			"Q5008",
			"Q5010",
		},
		SNOMEDCT: {
			"183919006", // Urgent admission to hospice (procedure)
			"183920000", // Routine admission to hospice (procedure)
			"183921001", // Admission to hospice for respite (procedure)
			"305336008", // Admission to hospice (procedure)
			"305911006", // Seen in hospice (finding)
			"385765002", // Hospice care management (procedure)
		},
	},
	HospiceDiagnosis: {
		ICD10CM: {
			"Z51.5", // Encounter for palliative care
		},
		SNOMEDCT: {
			"170935008",
			"170936009",
			"385763009",
		},
	},
	PalliativeCareEncounter: {
		HCPCSLEVELII: {
			"G9054",
		},
		SNOMEDCT: {
			"305284002", // Admission by palliative care physician (procedure)
			"305381007", // Admission to palliative care department (procedure)
			"305686008", // Seen by palliative care physician (finding)
			"305824005", // Seen by palliative care medicine service (finding)
			"441874000", // Seen by palliative care service (finding)
			"4901000124101",
			"713281006", // Consultation for palliative care (procedure)
		},
	},
	PalliativeCareIntervention: {
		SNOMEDCT: {
			"103735009", // Palliative care (regime/therapy)
			"105402000",
			"395669003", // Specialist palliative care treatment (regime/therapy)
			"395670002",
			"395694002",
			"395695001",
			"443761007", // Anticipatory palliative care (regime/therapy)
			"1841000124106",
			"433181000124107",
		},
	},
	PalliativeCareDiagnosis: {
		ICD10CM: {
			"Z51.5", // Encounter for palliative care
		},
	},
	FrailtyDevice: {
		SNOMEDCT: {
			"466986006", // Walking table (physical object)
			"1142151007",
			"1255320005", // Wheeled walker (physical object)
			"1256013004",
			"1256014005",
			"1256015006",
			"1256019000",
			"1256020006",
			"1256022003",
			"183240000", // Self-propelled wheelchair (physical object)
			"183241001",
			"183248007", // Attendant powered wheelchair (physical object)
			"228869008", // Manual wheelchair (physical object)
			"23366006",  // Motorized wheelchair device (physical object)
		},
	},
	FrailtyDiagnosis: {
		ICD10CM: {
			"M62.84", // Sarcopenia
			"R26.2",  // Difficulty in walking, not elsewhere classified
			"R26.89",
			"R26.9",
			"R41.81", // Age-related cognitive decline
			"R53.1",  // Weakness
			"R53.81", // Other malaise
			"R54",    // Age-related physical debility
			"R62.7",
			"R63.4", // Abnormal weight loss
			"R63.6",
			"R64", // Cachexia
		},
		SNOMEDCT: {
			"248279007", // Frailty (finding)
		},
	},
	FrailtyEncounter: {
		CPT: {
			"99504", // Home visit for mechanical ventilation care
			"99509", // Home visit for assistance with activities of daily living
		},
		HCPCSLEVELII: {
			"G0162",
			"G0299",
			"G0300",
			"G0493",
			"G0494",
			"S0271",
			"S0311",
			"S9123", // Nursing care, in the home; by registered nurse, per hour
			"S9124",
			"T1000",
			"T1001", // Nursing assessment / evaluation
			"T1002",
			"T1003",
			"T1004",
		},
	},
	FrailtySymptom: {
		ICD10CM: {
			"R26.0", // Ataxic gait
			"R26.1", // Paralytic gait
			"R26.2",
			"R26.89",
			"R26.9",
			"R29.6", // Repeated falls
			"R53.1",
			"R53.81",
			"R53.83",
			"R54",
			"R63.4",
			"R63.6",
			"R64",
		},
		SNOMEDCT: {
			"126013009", // Muscle atrophy, generalized (finding)
			"129588001", // Age-related physical debility (finding)
			"161874001", // Debility (finding)
			"162236007", // Weakness present (finding)
			"250002000", // Falls (finding)
			"271795006", // Malaise and fatigue (finding)
			"50627001",  // Abnormal gait (finding)
		},
	},
	AdvancedIllness: {
		ICD10CM: {
			"C25.9",  // Malignant neoplasm of pancreas, unspecified
			"C78.00", // Secondary malignant neoplasm of unspecified lung
			"C78.7",  // Secondary malignant neoplasm of liver and intrahepatic bile duct
			"C79.31", // Secondary malignant neoplasm of brain
			"C79.51", // Secondary malignant neoplasm of bone
			"F01.50", // Vascular dementia without behavioral disturbance
			"F01.51",
			"F02.80", // Dementia in other diseases classified elsewhere
			"F02.81",
			"F03.90", // Unspecified dementia without behavioral disturbance
			"F03.91",
			"F10.27", // Alcohol dependence with alcohol-induced persisting dementia
			"G30.0",  // Alzheimer's disease with early onset
			"G30.1",
			"G30.8",
			"G30.9",  // Alzheimer's disease, unspecified
			"I50.22", // Chronic systolic (congestive) heart failure
			"I50.42",
			"J84.112", // Idiopathic pulmonary fibrosis
			"J96.10",  // Chronic respiratory failure
			"K70.40",  // Alcoholic hepatic failure without coma
			"K74.60",  // Unspecified cirrhosis of liver
			"N18.5",   // Chronic kidney disease, stage 5
			"N18.6",   // End stage renal disease
		},
		SNOMEDCT: {
			"52448006", // Dementia (disorder)
			"90688005", // Chronic respiratory failure (disorder)
		},
	},
	DementiaMedications: {
		RXNORM: {
			"1100184", // donepezil hydrochloride 23 MG Oral Tablet
			"1308569", // 24 HR rivastigmine 0.554 MG/HR Transdermal System
			"1599803",
			"1599805",
			"1805420",
			"1805425",
			"1858970",
			"310436", // galantamine 4 MG Oral Tablet
			"310437", // galantamine 8 MG Oral Tablet
			"312835", // rivastigmine 3 MG Oral Capsule
			"312836",
			"314214",
			"314215",
			"579148", // galantamine 12 MG Oral Tablet
		},
	},
	NursingFacilityVisit: {
		CPT: {
			"99304", // Initial nursing facility care, per day
			"99305",
			"99306",
			"99307", // Subsequent nursing facility care, per day
			"99308",
			"99309",
			"99310",
			"99315", // Nursing facility discharge management; 30 minutes or less
			"99316",
		},
		SNOMEDCT: {
			"18170008",  // Subsequent nursing facility visit (procedure)
			"207195004", // History and physical examination with evaluation and management of nursing facility patient (procedure)
		},
	},
	LongTermResidentialCare: {
		CPT: {
			"99324", // Domiciliary or rest home visit, new patient
			"99325",
			"99326",
			"99327",
			"99328",
			"99334", // Domiciliary or rest home visit, established patient
			"99335",
			"99336",
			"99337",
		},
		SNOMEDCT: {
			"160734000", // Lives in a nursing home (finding)
		},
	},
}
