package placeholder

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decode unwraps the data URI and returns the raw SVG markup.
func decode(t *testing.T, dataURI string) string {
	t.Helper()
	raw, ok := DecodeSVG(dataURI)
	require.True(t, ok, "expected a base64 SVG data URI")
	return string(raw)
}

// assertWellFormed walks the markup with the XML tokenizer; malformed escaping
// surfaces as a token error.
func assertWellFormed(t *testing.T, svg string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(svg))
	for {
		_, err := dec.Token()
		if err != nil {
			require.Contains(t, err.Error(), "EOF", "markup is not well-formed: %v", err)
			return
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	first := Render("Inception", "2010")
	second := Render("Inception", "2010")
	assert.Equal(t, first, second)
}

func TestRenderEmptyYearOmitsYearElement(t *testing.T) {
	withYear := decode(t, Render("Inception", "2010"))
	withoutYear := decode(t, Render("Inception", ""))

	assert.Equal(t, 2, strings.Count(withYear, "<text"))
	assert.Equal(t, 1, strings.Count(withoutYear, "<text"))
	assert.Contains(t, withYear, ">2010</text>")

	// Removing the year element from the dated poster must reproduce the
	// undated poster byte for byte.
	start := strings.Index(withYear, `<text x="150" y="405"`)
	require.GreaterOrEqual(t, start, 0)
	end := strings.Index(withYear[start:], "</text>") + start + len("</text>")
	assert.Equal(t, withoutYear, withYear[:start]+withYear[end:])
}

func TestRenderEscapesXMLCharacters(t *testing.T) {
	svg := decode(t, Render("A & B", "2020"))

	assert.Contains(t, svg, "A &amp; B")
	assertWellFormed(t, svg)

	svg = decode(t, Render(`<"Quoted"> & 'More'`, "1999"))
	assert.NotContains(t, svg, `>&<`)
	assertWellFormed(t, svg)
}

func TestRenderTruncatesLongTitles(t *testing.T) {
	long := "An Extremely Long Movie Title That Keeps Going"
	svg := decode(t, Render(long, "2001"))

	assert.Contains(t, svg, long[:25]+"</text>")
	assert.NotContains(t, svg, long)
}

func TestRenderShortTitleUsedWhole(t *testing.T) {
	svg := decode(t, Render("Up", "2009"))
	assert.Contains(t, svg, ">Up</text>")
}

func TestRenderSameTitleSameColors(t *testing.T) {
	a := decode(t, Render("The Matrix", "1999"))
	b := decode(t, Render("The Matrix", "2003"))

	// Color selection depends only on the title, so both posters share the
	// same gradient stops.
	gradientOf := func(svg string) string {
		start := strings.Index(svg, "<defs>")
		end := strings.Index(svg, "</defs>")
		require.Greater(t, end, start)
		return svg[start:end]
	}
	assert.Equal(t, gradientOf(a), gradientOf(b))
}

func TestHashMatchesReferenceAccumulator(t *testing.T) {
	// h = h*31 + code unit, 32-bit wraparound, absolute value.
	assert.Equal(t, 65, hash("A"))
	assert.Equal(t, 65*31+66, hash("AB"))
	assert.Equal(t, 0, hash(""))

	// Long input must wrap rather than grow without bound.
	assert.Less(t, hash(strings.Repeat("z", 64)), 1<<31)
}

func TestNoImageDecodes(t *testing.T) {
	svg := decode(t, NoImage)
	assert.Contains(t, svg, "No Image")
	assertWellFormed(t, svg)
}
