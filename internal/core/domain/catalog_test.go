package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopicMap_Label(t *testing.T) {
	topics := DefaultTopics()

	assert.Equal(t, "Social", topics.Label("1"))
	assert.Equal(t, "Política", topics.Label("13"))
	assert.Equal(t, "Desconocido", topics.Label("99"))

	var empty TopicMap
	assert.Equal(t, "Desconocido", empty.Label("1"))
}

func TestClassification_String(t *testing.T) {
	assert.Equal(t, "(unclassified)", Classification{}.String())
	assert.Equal(t, "Riesgos / Riesgo territorial",
		Classification{Rubro: "Riesgos", Subrubro: "Riesgo territorial"}.String())
	assert.True(t, Classification{}.IsZero())
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.NotEmpty(t, c.Rubros)
	assert.Equal(t, "Megatendencias", c.Rubros[0].Name)
	for _, r := range c.Rubros {
		assert.NotEmpty(t, r.Subrubros, "rubro %s has no subrubros", r.Name)
		for _, s := range r.Subrubros {
			assert.NotEmpty(t, s.Pattern)
		}
	}
	assert.Equal(t, "Ética", c.Topics.Label("14"))
}
