package search

// The diagnosis wizard maps a fixed questionnaire to static filter
// parameters. It is a lookup, not a recommendation engine: no scoring,
// no inference, just the mapping the question flow has always used.

// WizardAnswers holds the questionnaire responses.
type WizardAnswers struct {
	// Symptom is the self-reported complaint category.
	Symptom string
	// Timing is when the user can visit: "weekday", "evening", "weekend".
	Timing string
	// PreferOnline is set when the user wants remote consultation.
	PreferOnline bool
	// Prefecture narrows results when the user supplied one.
	Prefecture string
}

// symptomSpecialties maps complaint categories to the specialty
// substring used on listing pages.
var symptomSpecialties = map[string]string{
	"fever":   "内科",
	"stomach": "消化器内科",
	"skin":    "皮膚科",
	"eye":     "眼科",
	"ent":     "耳鼻咽喉科",
	"dental":  "歯科",
	"mental":  "心療内科",
	"child":   "小児科",
	"bone":    "整形外科",
	"heart":   "循環器内科",
}

// CriteriaForWizard translates questionnaire answers into a filter
// configuration. Unknown answers simply contribute no constraint.
func CriteriaForWizard(answers WizardAnswers) Criteria {
	c := Criteria{
		Prefecture: answers.Prefecture,
		Online:     answers.PreferOnline,
	}
	if specialty, ok := symptomSpecialties[answers.Symptom]; ok {
		c.Specialty = specialty
	}
	switch answers.Timing {
	case "evening":
		c.Evening = true
	case "weekend":
		c.Weekend = true
	}
	return c
}
