package terminology

// Colorectal cancer screening and exclusion-procedure value sets. Code lists
// are representative expansions of the published eCQM value sets; the OIDs
// identify the source sets.
const (
	Colonoscopy              Concept = "Colonoscopy"              // 2.16.840.1.113883.3.464.1003.108.12.1020
	FlexibleSigmoidoscopy    Concept = "FlexibleSigmoidoscopy"    // 2.16.840.1.113883.3.464.1003.108.12.1010
	CTColonography           Concept = "CTColonography"           // 2.16.840.1.113883.3.464.1003.108.12.1038
	FecalOccultBloodTest     Concept = "FecalOccultBloodTest"     // 2.16.840.1.113883.3.464.1003.198.12.1011
	StoolDNAFITTest          Concept = "StoolDNAFITTest"          // 2.16.840.1.113883.3.464.1003.108.12.1039
	TotalColectomy           Concept = "TotalColectomy"           // 2.16.840.1.113883.3.464.1003.198.12.1019
	MalignantNeoplasmOfColon Concept = "MalignantNeoplasmOfColon" // 2.16.840.1.113883.3.464.1003.108.12.1001
)

var screeningValueSets = map[Concept]map[System][]string{
	Colonoscopy: {
		CPT: {
			"44388", // Colonoscopy through stoma; diagnostic
			"44389", // Colonoscopy through stoma; with biopsy
			"44390", // Colonoscopy through stoma; with removal of foreign body(s)
			"44391", // Colonoscopy through stoma; with control of bleeding
			"44392",
			"44394",
			"44401",
			"44402",
			"44403",
			"44404",
			"45378", // Colonoscopy, flexible; diagnostic
			"45379",
			"45380", // Colonoscopy, flexible; with biopsy
			"45381",
			"45382",
			"45384",
			"45385", // Colonoscopy, flexible; with removal of lesion by snare
			"45386",
			"45388",
			"45389",
			"45390",
			"45391",
			"45392",
			"45393",
			"45398",
		},
		HCPCSLEVELII: {
			"G0105", // Colorectal cancer screening; colonoscopy, high risk
			"G0121", // Colorectal cancer screening; colonoscopy, not high risk
		},
		SNOMEDCT: {
			"1209098000",
			"12350003",
			"174158000", // Open colonoscopy (procedure)
			"174173004",
			"174179000",
			"174185007",
			"235150006", // Total colonoscopy (procedure)
			"25732003",  // Fiberoptic colonoscopy with biopsy (procedure)
			"302052009",
			"367535003", // Fiberoptic colonoscopy (procedure)
			"443998000",
			"444783004", // Screening colonoscopy (procedure)
			"446521004",
			"446745002",
		},
	},
	FlexibleSigmoidoscopy: {
		CPT: {
			"45330", // Sigmoidoscopy, flexible; diagnostic
			"45331", // Sigmoidoscopy, flexible; with biopsy
			"45332",
			"45333",
			"45334",
			"45335",
			"45337",
			"45338",
			"45340",
			"45341",
			"45342",
			"45346",
			"45347",
			"45349",
		},
		HCPCSLEVELII: {
			"G0104", // Colorectal cancer screening; flexible sigmoidoscopy
		},
		SNOMEDCT: {
			"396226005", // Flexible fiberoptic sigmoidoscopy with biopsy (procedure)
			"44441009",  // Flexible fiberoptic sigmoidoscopy (procedure)
		},
	},
	CTColonography: {
		CPT: {
			"74261", // CT colonography, diagnostic, without contrast
			"74262", // CT colonography, diagnostic, with contrast
			"74263", // CT colonography, screening
		},
		SNOMEDCT: {
			"418714002", // Virtual CT colonoscopy (procedure)
		},
	},
	FecalOccultBloodTest: {
		LOINC: {
			"12503-9",
			"12504-7",
			"14563-1", // Hemoglobin.gastrointestinal [Presence] in Stool --1st specimen
			"14564-9", // Hemoglobin.gastrointestinal [Presence] in Stool --2nd specimen
			"14565-6", // Hemoglobin.gastrointestinal [Presence] in Stool --3rd specimen
			"2335-8",  // Hemoglobin.gastrointestinal [Presence] in Stool
			"27396-1",
			"27401-9",
			"27925-7",
			"27926-5",
			"29771-3",
			"56490-6",
			"56491-4",
			"57905-2",
		},
	},
	StoolDNAFITTest: {
		LOINC: {
			"77353-1", // Noninvasive colorectal ca DNA and occult blood screening, narrative
			"77354-9", // Noninvasive colorectal ca DNA and occult blood screening, presence
		},
	},
	TotalColectomy: {
		CPT: {
			"44150",
			"44151",
			"44152",
			"44153",
			"44155",
			"44156",
			"44157",
			"44158",
			"44210", // Laparoscopy, surgical; colectomy, total
			"44211",
			"44212",
		},
		ICD10PCS: {
			"0DTE0ZZ", // Resection of Large Intestine, Open Approach
			"0DTE4ZZ", // Resection of Large Intestine, Percutaneous Endoscopic Approach
			"0DTE7ZZ",
			"0DTE8ZZ",
		},
		SNOMEDCT: {
			"26390003", // Total colectomy (procedure)
			"303401008",
			"307666008", // Total colectomy and ileostomy (procedure)
			"307667004",
			"307669001",
			"31130001",
			"36192008",
			"44751009",
			"456004",
			"713165008",
			"787108001",
			"787109009", // Excision of entire colon and entire rectum (procedure)
			"787874000", // Laparoscopic total colectomy (procedure)
			"787875004",
		},
	},
	MalignantNeoplasmOfColon: {
		ICD10CM: {
			"C18.0", // Malignant neoplasm of cecum
			"C18.1",
			"C18.2", // Malignant neoplasm of ascending colon
			"C18.3",
			"C18.4", // Malignant neoplasm of transverse colon
			"C18.5",
			"C18.6", // Malignant neoplasm of descending colon
			"C18.7", // Malignant neoplasm of sigmoid colon
			"C18.8",
			"C18.9", // Malignant neoplasm of colon, unspecified
			"C19",   // Malignant neoplasm of rectosigmoid junction
			"C20",   // Malignant neoplasm of rectum
		},
		SNOMEDCT: {
			"93761005",  // Primary malignant neoplasm of colon (disorder)
			"269533000", // Carcinoma of colon (disorder)
			"363406005", // Malignant neoplasm of colon (disorder)
			"363510005", // Malignant tumor of rectosigmoid junction (disorder)
		},
	},
}
