package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetMatch(t *testing.T) {
	tests := []struct {
		name string
		set  Set
		text string
		want bool
	}{
		{name: "exact", set: Set{"bank"}, text: "bank", want: true},
		{name: "case insensitive", set: Set{"bank"}, text: "First International BANK", want: true},
		{name: "substring false positive", set: Set{"bank"}, text: "Investment Banker", want: true},
		{name: "no match", set: Set{"bank"}, text: "Bakery", want: false},
		{name: "empty text", set: Technology, text: "", want: false},
		{name: "empty set", set: nil, text: "developer", want: false},
		{name: "empty term ignored", set: Set{""}, text: "anything", want: false},
		{name: "multi word term", set: Hospitality, text: "Front Desk Agent", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.Match(tt.text))
		})
	}
}

func TestSetFindReturnsFirstTermInOrder(t *testing.T) {
	term, ok := Technology.Find("Senior Data Engineer")
	assert.True(t, ok)
	assert.Equal(t, "engineer", term)

	_, ok = Technology.Find("Chef")
	assert.False(t, ok)
}

func TestUnion(t *testing.T) {
	set := Union(Set{"a", "b"}, Set{"c"})
	assert.Equal(t, Set{"a", "b", "c"}, set)
	assert.True(t, Union(Academic, NGO).Match("Programme Officer"))
}
