package terminology

// Value sets specific to the glycemic control measure.
const (
	Diabetes               Concept = "Diabetes"               // 2.16.840.1.113883.3.464.1003.103.12.1001
	HbA1cLaboratoryTest    Concept = "HbA1cLaboratoryTest"    // 2.16.840.1.113883.3.464.1003.198.12.1013
	DietaryRecommendations Concept = "DietaryRecommendations" // 2.16.840.1.113883.3.600.1515
)

var diabetesValueSets = map[Concept]map[System][]string{
	Diabetes: {
		ICD10CM: {
			"E10.10", // Type 1 diabetes mellitus with ketoacidosis without coma
			"E10.21", // Type 1 diabetes mellitus with diabetic nephropathy
			"E10.22",
			"E10.40", // Type 1 diabetes mellitus with diabetic neuropathy, unspecified
			"E10.51",
			"E10.65", // Type 1 diabetes mellitus with hyperglycemia
			"E10.8",
			"E10.9",  // Type 1 diabetes mellitus without complications
			"E11.00", // Type 2 diabetes mellitus with hyperosmolarity without NKHHC
			"E11.21", // Type 2 diabetes mellitus with diabetic nephropathy
			"E11.22",
			"E11.40", // Type 2 diabetes mellitus with diabetic neuropathy, unspecified
			"E11.51",
			"E11.65", // Type 2 diabetes mellitus with hyperglycemia
			"E11.8",
			"E11.9", // Type 2 diabetes mellitus without complications
			"E13.9", // Other specified diabetes mellitus without complications
			"O24.011",
			"O24.111",
			"O24.311",
		},
		SNOMEDCT: {
			"44054006",  // Diabetes mellitus type 2 (disorder)
			"46635009",  // Diabetes mellitus type 1 (disorder)
			"73211009",  // Diabetes mellitus (disorder)
			"190330002", // Hyperosmolar coma due to type 1 diabetes mellitus (disorder)
			"237599002", // Insulin treated type 2 diabetes mellitus (disorder)
			"426875007", // Latent autoimmune diabetes mellitus in adult (disorder)
		},
	},
	HbA1cLaboratoryTest: {
		LOINC: {
			"17856-6", // Hemoglobin A1c/Hemoglobin.total in Blood by HPLC
			"4548-4",  // Hemoglobin A1c/Hemoglobin.total in Blood
			"4549-2",  // Hemoglobin A1c/Hemoglobin.total in Blood by Electrophoresis
		},
	},
	DietaryRecommendations: {
		SNOMEDCT: {
			"11816003",  // Diet education (procedure)
			"182922004", // Dietary regime (regime/therapy)
			"182954008", // Diabetic diet (regime/therapy)
			"183065005", // Low carbohydrate diet education (procedure)
			"281085002", // Sugar free diet (regime/therapy)
			"284352003", // Carbohydrate-modified diet (regime/therapy)
			"361231003", // Prescribed dietary intake (regime/therapy)
			"443288003", // Lifestyle education regarding diet (procedure)
		},
	},
}
