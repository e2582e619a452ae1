package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitiesDetectsMarkedOrganizations(t *testing.T) {
	r := NewOrgRecognizer()

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"legal suffix", "Join Acme Inc as a senior engineer", "Acme Inc"},
		{"trailing period", "We are Globex Corp. and we are hiring", "Globex Corp"},
		{"company noun", "Initech Technologies is looking for developers", "Initech Technologies"},
		{"multi word", "Apply now at Stark Industries Labs today", "Stark Industries Labs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := r.Entities(tt.text)
			require.NotEmpty(t, entities)
			assert.Equal(t, tt.expected, entities[0].Text)
			assert.Equal(t, LabelOrg, entities[0].Label)
		})
	}
}

func TestEntitiesIgnoresUnmarkedSpans(t *testing.T) {
	r := NewOrgRecognizer()

	entities := r.Entities("Senior Software Engineer position in New York")

	assert.Empty(t, entities)
}

func TestEntitiesIgnoresBareMarker(t *testing.T) {
	r := NewOrgRecognizer()

	// A marker word alone is not an organization.
	entities := r.Entities("Inc magazine published an article")

	assert.Empty(t, entities)
}
