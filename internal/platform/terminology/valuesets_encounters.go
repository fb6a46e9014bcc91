package terminology

// Qualifying-encounter value sets. A measure's initial population requires an
// encounter from one of these sets during (or overlapping) the measurement
// period.
const (
	OfficeVisit                          Concept = "OfficeVisit"                          // 2.16.840.1.113883.3.464.1003.101.12.1001
	AnnualWellnessVisit                  Concept = "AnnualWellnessVisit"                  // 2.16.840.1.113883.3.526.3.1240
	PreventiveCareInitialOfficeVisit     Concept = "PreventiveCareInitialOfficeVisit"     // 2.16.840.1.113883.3.464.1003.101.12.1023
	PreventiveCareEstablishedOfficeVisit Concept = "PreventiveCareEstablishedOfficeVisit" // 2.16.840.1.113883.3.464.1003.101.12.1025
	HomeHealthcareServices               Concept = "HomeHealthcareServices"               // 2.16.840.1.113883.3.464.1003.101.12.1016
	TelephoneVisits                      Concept = "TelephoneVisits"                      // 2.16.840.1.113883.3.464.1003.101.12.1080
	VirtualEncounter                     Concept = "VirtualEncounter"                     // 2.16.840.1.113883.3.464.1003.101.12.1089
	EncounterInpatient                   Concept = "EncounterInpatient"                   // 2.16.840.1.113883.3.666.5.307
	NutritionServices                    Concept = "NutritionServices"                    // 2.16.840.1.113883.3.464.1003.101.12.1095
)

var encounterValueSets = map[Concept]map[System][]string{
	OfficeVisit: {
		CPT: {
			"99202", // Office or other outpatient visit, new patient
			"99203",
			"99204",
			"99205",
			"99212", // Office or other outpatient visit, established patient
			"99213",
			"99214",
			"99215",
		},
		SNOMEDCT: {
			"185349003", // Encounter for check up (procedure)
			"185463005",
			"185464004",
			"185465003",
			"3391000175108",
			"439740005", // Postoperative follow-up visit (procedure)
		},
	},
	AnnualWellnessVisit: {
		HCPCSLEVELII: {
			"G0402", // Initial preventive physical examination
			"G0438", // Annual wellness visit, initial
			"G0439", // Annual wellness visit, subsequent
		},
		SNOMEDCT: {
			"444971000124105", // Annual wellness visit (procedure)
			"456201000124103", // Medicare annual wellness visit (procedure)
			"86013001",
			"866149003", // Annual visit (procedure)
			"90526000",
		},
	},
	PreventiveCareInitialOfficeVisit: {
		CPT: {
			"99385", // Initial comprehensive preventive medicine, 18-39 years
			"99386", // Initial comprehensive preventive medicine, 40-64 years
			"99387", // Initial comprehensive preventive medicine, 65 years and older
		},
	},
	PreventiveCareEstablishedOfficeVisit: {
		CPT: {
			"99395", // Periodic comprehensive preventive medicine, 18-39 years
			"99396", // Periodic comprehensive preventive medicine, 40-64 years
			"99397", // Periodic comprehensive preventive medicine, 65 years and older
		},
	},
	HomeHealthcareServices: {
		CPT: {
			"99341", // Home or residence visit, new patient
			"99342",
			"99344",
			"99345",
			"99347", // Home or residence visit, established patient
			"99348",
			"99349",
			"99350",
		},
		SNOMEDCT: {
			"185460008",
			"185462000",
			"185466002", // Home visit for urgent condition (procedure)
			"185467006",
			"185468001", // Home visit for chronic condition (procedure)
			"185470005", // Home visit elderly assessment (procedure)
			"225929007",
			"315205008",
			"439708006", // Home visit (procedure)
			"698704008",
			"704126008",
		},
	},
	TelephoneVisits: {
		CPT: {
			"98008", // Synchronous audio-only visit, new patient
			"98009",
			"98010",
			"98011",
			"98012", // Synchronous audio-only visit, established patient
			"98013",
			"98014",
			"98015",
			"98966", // Telephone assessment, nonphysician
			"98967",
			"98968",
			"99441", // Telephone evaluation and management, physician
			"99442",
			"99443",
		},
		SNOMEDCT: {
			"185317003", // Telephone encounter (procedure)
			"314849005",
			"386472008", // Telephone consultation (procedure)
			"386473003", // Telephone follow-up (procedure)
			"401267002", // Telephone triage encounter (procedure)
		},
	},
	VirtualEncounter: {
		CPT: {
			"98970", // Online digital assessment, nonphysician
			"98971",
			"98972",
			"98980", // Remote therapeutic monitoring treatment management
			"98981",
			"99421", // Online digital evaluation and management
			"99422",
			"99423",
			"99457", // Remote physiologic monitoring treatment management
			"99458",
		},
		HCPCSLEVELII: {
			"G0071",
			"G2010", // Remote evaluation of recorded video and/or images
			"G2012", // Brief communication technology-based service
			"G2250",
			"G2251",
			"G2252",
		},
	},
	EncounterInpatient: {
		SNOMEDCT: {
			"183452005", // Emergency hospital admission (procedure)
			"32485007",  // Hospital admission (procedure)
			"8715000",   // Hospital admission, elective (procedure)
		},
	},
	NutritionServices: {
		CPT: {
			"97802", // Medical nutrition therapy; initial assessment
			"97803", // Medical nutrition therapy; re-assessment
			"97804", // Medical nutrition therapy; group
		},
		HCPCSLEVELII: {
			"G0270",
			"G0271",
			"S9470", // Nutritional counseling, dietitian visit
		},
		SNOMEDCT: {
			"11816003", // Diet education (procedure)
			"61310001", // Nutrition education (procedure)
		},
	},
}
