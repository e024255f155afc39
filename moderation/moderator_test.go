package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator([]string{"badger", "snake", "mushroom"}, replacementChar)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Simple word and space preservation", input: "The badger is here", expected: "The ****** is here"},
		{name: "Multiple occurrences", input: "badger badger badger", expected: "****** ****** ******"},
		{name: "Leet speak and internal punctuation", input: "Look at B.4.d.g.€r !", expected: "Look at ********** !"},
		{name: "Uppercase and noise", input: "S-N-A-K-E is a B.A.D.G.E.R", expected: "********* is a ***********"},
		{name: "Accents are kept", input: "Un été avec un badger", expected: "Un été avec un ******"},
		{name: "Trailing punctuation", input: "I love badger!", expected: "I love ******!"},
		{name: "Nothing to censor", input: "See you at noon", expected: "See you at noon"},
		{name: "Empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, mod.Censor(tt.input))
		})
	}
}

func TestModerator_Noise_Only_Words_Are_Ignored(t *testing.T) {
	req := require.New(t)

	// Given a dictionary with entries made of noise only
	mod, err := NewModerator([]string{"...", ",,,", "", "badger"}, replacementChar)
	req.NoError(err)

	req.Equal("The ****** is safe", mod.Censor("The badger is safe"))
	req.Equal("Hello ...", mod.Censor("Hello ..."))
}

func TestModerator_Empty_Dictionary_Lets_Everything_Through(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator(nil, replacementChar)
	req.NoError(err)

	req.Equal("anything goes", mod.Censor("anything goes"))

	var none *Moderator
	req.Equal("nil moderator", none.Censor("nil moderator"))
}
