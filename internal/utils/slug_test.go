// internal/utils/slug_test.go
package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Classic Tee", "classic-tee"},
		{"  Classic   Tee  ", "classic-tee"},
		{"100% Cotton!", "100-cotton"},
		{"Été & Hiver", "t-hiver"},
		{"UPPER_case-mixed", "upper-case-mixed"},
		{"---", ""},
		{"", ""},
		{"a", "a"},
		{"North & Side Co.", "north-side-co"},
	}

	for _, tc := range cases {
		got := Slugify(tc.in)
		assert.Equal(t, tc.want, got, "Slugify(%q)", tc.in)
		if got != "" {
			assert.True(t, slugShape.MatchString(got), "Slugify(%q) = %q has bad shape", tc.in, got)
		}
		// Applying the normalizer to its own output changes nothing.
		assert.Equal(t, got, Slugify(got), "Slugify(%q) not idempotent", tc.in)
	}
}

func TestSlugifyAll(t *testing.T) {
	got := SlugifyAll([]string{"Summer Sale", "summer-sale", "!!", "", "Winter"})
	assert.Equal(t, []string{"summer-sale", "winter"}, got)

	assert.Nil(t, SlugifyAll(nil))
	assert.Nil(t, SlugifyAll([]string{"***"}))
}
