package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCriteriaForWizard(t *testing.T) {
	t.Run("maps symptom to specialty", func(t *testing.T) {
		c := CriteriaForWizard(WizardAnswers{Symptom: "skin"})
		assert.Equal(t, "皮膚科", c.Specialty)
	})

	t.Run("unknown symptom contributes nothing", func(t *testing.T) {
		c := CriteriaForWizard(WizardAnswers{Symptom: "unknown"})
		assert.Empty(t, c.Specialty)
	})

	t.Run("timing answers", func(t *testing.T) {
		assert.True(t, CriteriaForWizard(WizardAnswers{Timing: "evening"}).Evening)
		assert.True(t, CriteriaForWizard(WizardAnswers{Timing: "weekend"}).Weekend)

		weekday := CriteriaForWizard(WizardAnswers{Timing: "weekday"})
		assert.False(t, weekday.Evening)
		assert.False(t, weekday.Weekend)
	})

	t.Run("carries online preference and prefecture", func(t *testing.T) {
		c := CriteriaForWizard(WizardAnswers{
			Symptom:      "child",
			PreferOnline: true,
			Prefecture:   "東京都",
		})
		assert.Equal(t, "小児科", c.Specialty)
		assert.True(t, c.Online)
		assert.Equal(t, "東京都", c.Prefecture)
	})
}
