// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package names

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Key
	}{
		{"given and family", "Jane+Doe", Key{'j', "doe"}},
		{"accents", "Élodie+Müller", Key{'e', "muller"}},
		{"hyphenated surname", "Jean+Dupont-Moretti", Key{'j', "dupontmoretti"}},
		{"apostrophe surname", "Sean+O'Brien", Key{'s', "obrien"}},
		{"surname with space", "Ludwig+van Beethoven", Key{'l', "vanbeethoven"}},
		{"hyphenated given", "Jean-Luc+Picard", Key{'j', "picard"}},
		{"leading space in given", " Anne+Smith", Key{'a', "smith"}},
		{"missing given", "+Doe", Key{'+', "doe"}},
		{"last plus wins", "A+B+Carter", Key{'a', "carter"}},
		{"no separator uses whole name", "Jane Doe", Key{'j', "janedoe"}},
		{"letters without decomposition kept", "Łukasz+Żółć", Key{'ł', "zołc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, in := range []string{"", " ", "-", "'- '"} {
		t.Run(in, func(t *testing.T) {
			_, err := Normalize(in)
			var empty *EmptyNameError
			if !errors.As(err, &empty) {
				t.Fatalf("Normalize(%q) error = %v, want EmptyNameError", in, err)
			}
			if empty.Name != in {
				t.Errorf("EmptyNameError.Name = %q, want %q", empty.Name, in)
			}
		})
	}
}

func TestNormalizeAccentAndCaseInvariant(t *testing.T) {
	for _, n := range []string{"Jane+Doe", "José+Núñez", "Zoë+Brontë-Smith", "Ana María+de la Cruz", "Ørjan+Håland"} {
		t.Run(n, func(t *testing.T) {
			want, err := Normalize(n)
			require.NoError(t, err)
			got, err := Normalize(strings.ToUpper(Deaccent(n)))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDeaccent(t *testing.T) {
	assert.Equal(t, "Elodie", Deaccent("Élodie"))
	assert.Equal(t, "Nunez", Deaccent("Núñez"))
	assert.Equal(t, "plain", Deaccent("plain"))
}

func TestJoinName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Jane Doe", "Jane+Doe"},
		{"John Q. Smith", "John Q.+Smith"},
		{"  Jane Doe ", "Jane+Doe"},
		{"Madonna", "Madonna"},
		{"Jane+Doe", "Jane+Doe"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := JoinName(tt.in); got != tt.want {
			t.Errorf("JoinName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoinedQueryNameMatchesStructuredName(t *testing.T) {
	q, err := Normalize(JoinName("Jane Doe"))
	require.NoError(t, err)
	c, err := Normalize("Jane+Doe")
	require.NoError(t, err)
	assert.Equal(t, c, q)
}

func TestSet(t *testing.T) {
	set, err := NewSet([]string{"Jane+Doe", "JANE+DOE", "Mary+Jones"})
	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.True(t, set.Contains(Key{'j', "doe"}))
	assert.False(t, set.Contains(Key{'j', "smith"}))

	_, err = NewSet([]string{"Jane+Doe", ""})
	var empty *EmptyNameError
	assert.ErrorAs(t, err, &empty)
}
