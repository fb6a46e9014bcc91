package terminology

import "testing"

func TestNormalizeSystem(t *testing.T) {
	tests := []struct {
		raw  string
		want System
	}{
		{"http://snomed.info/sct", SNOMEDCT},
		{"SNOMED-CT", SNOMEDCT},
		{"snomedct", SNOMEDCT},
		{"http://loinc.org", LOINC},
		{"LOINC", LOINC},
		{"ICD-10", ICD10CM},
		{"ICD-10-CM", ICD10CM},
		{"http://hl7.org/fhir/sid/icd-10-cm", ICD10CM},
		{"ICD-10-PCS", ICD10PCS},
		{"CPT", CPT},
		{"http://www.ama-assn.org/go/cpt", CPT},
		{"HCPCS", HCPCSLEVELII},
		{"hcpcs-level-ii", HCPCSLEVELII},
		{"RxNorm", RXNORM},
		{"http://www.nlm.nih.gov/research/umls/rxnorm", RXNORM},
		{"CVX", System("CVX")},
	}
	for _, tt := range tests {
		if got := NormalizeSystem(tt.raw); got != tt.want {
			t.Errorf("NormalizeSystem(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		sys  System
		code string
		want string
	}{
		{ICD10CM, "Z12.11", "Z1211"},
		{ICD10CM, "C18.9", "C189"},
		{ICD10PCS, "0DTE0ZZ", "0DTE0ZZ"},
		{SNOMEDCT, "444783004", "444783004"},
		{LOINC, "77353-1", "77353-1"},
		{CPT, "45378", "45378"},
	}
	for _, tt := range tests {
		if got := NormalizeCode(tt.sys, tt.code); got != tt.want {
			t.Errorf("NormalizeCode(%s, %q) = %q, want %q", tt.sys, tt.code, got, tt.want)
		}
	}
}

func TestCodesFor(t *testing.T) {
	got := CodesFor(Colonoscopy, CPT, HCPCSLEVELII)
	for _, code := range []string{"45378", "45385", "G0105", "G0121"} {
		if _, ok := got[code]; !ok {
			t.Errorf("CodesFor(Colonoscopy, CPT, HCPCS) missing %q", code)
		}
	}
	if _, ok := got["444783004"]; ok {
		t.Error("CodesFor(Colonoscopy, CPT, HCPCS) should not include SNOMED codes")
	}

	// ICD-10 codes come back dot-stripped so they match normalized fact codes.
	got = CodesFor(MalignantNeoplasmOfColon, ICD10CM)
	if _, ok := got["C189"]; !ok {
		t.Error(`CodesFor(MalignantNeoplasmOfColon, ICD10CM) missing normalized "C189"`)
	}
	if _, ok := got["C18.9"]; ok {
		t.Error("CodesFor should normalize ICD-10 codes, dotted form present")
	}

	// Systems the concept has no codes for contribute nothing.
	if got := CodesFor(FecalOccultBloodTest, CPT); len(got) != 0 {
		t.Errorf("CodesFor(FecalOccultBloodTest, CPT) = %d codes, want 0", len(got))
	}
}

func TestCodesForUnknownConceptPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unknown concept")
		}
	}()
	CodesFor(Concept("NoSuchConcept"), SNOMEDCT)
}

func TestCodesSorted(t *testing.T) {
	codes := Codes(HbA1cLaboratoryTest, LOINC)
	if len(codes) != 3 {
		t.Fatalf("Codes(HbA1cLaboratoryTest, LOINC) = %d codes, want 3", len(codes))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] > codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
	if codes[0] != "17856-6" {
		t.Errorf("first code = %q, want 17856-6", codes[0])
	}
}

func TestRegistryCoversMeasureConcepts(t *testing.T) {
	concepts := []Concept{
		Colonoscopy, FlexibleSigmoidoscopy, CTColonography,
		FecalOccultBloodTest, StoolDNAFITTest, TotalColectomy,
		MalignantNeoplasmOfColon,
		HospiceCareAmbulatory, HospiceEncounter, HospiceDiagnosis,
		PalliativeCareEncounter, PalliativeCareIntervention, PalliativeCareDiagnosis,
		FrailtyDevice, FrailtyDiagnosis, FrailtyEncounter, FrailtySymptom,
		AdvancedIllness, DementiaMedications,
		NursingFacilityVisit, LongTermResidentialCare,
		OfficeVisit, AnnualWellnessVisit,
		PreventiveCareInitialOfficeVisit, PreventiveCareEstablishedOfficeVisit,
		HomeHealthcareServices, TelephoneVisits, VirtualEncounter,
		EncounterInpatient, NutritionServices,
		Diabetes, HbA1cLaboratoryTest, DietaryRecommendations,
	}
	for _, c := range concepts {
		if !Known(c) {
			t.Errorf("concept %s not registered", c)
		}
	}
}
