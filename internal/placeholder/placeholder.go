// Package placeholder renders deterministic poster art for titles that have no
// real artwork. The output is a self-contained SVG data URI, so it can be used
// directly as an image source without any network or disk access.
package placeholder

import (
	"encoding/base64"
	"strconv"
	"strings"
	"unicode/utf16"
)

// maxTitleLen is the number of UTF-16 code units kept from the title.
const maxTitleLen = 25

// scheme is one background/accent/highlight color triple.
type scheme struct {
	bg     string
	accent string
	light  string
}

// Fixed ordered palette; the title hash selects an entry, so the same title
// always gets the same colors.
var palette = [7]scheme{
	{bg: "#2c3e50", accent: "#3498db", light: "#ecf0f1"},
	{bg: "#8b4513", accent: "#d2691e", light: "#daa520"},
	{bg: "#1a1a2e", accent: "#ff6b6b", light: "#ee5a6f"},
	{bg: "#0d3b66", accent: "#ef476f", light: "#ffd60a"},
	{bg: "#264653", accent: "#2a9d8f", light: "#e76f51"},
	{bg: "#540d6e", accent: "#ee4266", light: "#ffd23f"},
	{bg: "#003d5c", accent: "#118ab2", light: "#06a77d"},
}

// NoImage is the neutral poster served when a title has no artwork and no name
// worth rendering.
var NoImage = encode(`<svg width="300" height="450" xmlns="http://www.w3.org/2000/svg"><rect fill="#4c5668" width="300" height="450"/><text x="50%" y="50%" font-size="16" fill="#a0adba" font-family="Arial" text-anchor="middle" dy=".3em">No Image</text></svg>`)

// hash accumulates h = h*31 + unit over the title's UTF-16 code units with
// 32-bit signed wraparound, then takes the absolute value.
func hash(s string) int {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}

// escapeXML replaces the five XML-sensitive characters so titles like
// "Fast & Furious" produce well-formed markup.
func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return r.Replace(s)
}

// truncate keeps the first maxTitleLen UTF-16 code units of s.
func truncate(s string) string {
	units := utf16.Encode([]rune(s))
	if len(units) <= maxTitleLen {
		return s
	}
	return string(utf16.Decode(units[:maxTitleLen]))
}

// accentRGB splits a #rrggbb color into decimal channel values.
func accentRGB(hex string) (int, int, int) {
	r, _ := strconv.ParseInt(hex[1:3], 16, 32)
	g, _ := strconv.ParseInt(hex[3:5], 16, 32)
	b, _ := strconv.ParseInt(hex[5:7], 16, 32)
	return int(r), int(g), int(b)
}

func encode(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// Render composes a 300x450 poster for the given title and year and returns it
// as a base64 SVG data URI. It is pure: identical arguments produce identical
// bytes. An empty year omits the year text element entirely.
func Render(title, year string) string {
	c := palette[hash(title)%len(palette)]
	ar, ag, ab := accentRGB(c.accent)

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="300" height="450" viewBox="0 0 300 450">`)
	b.WriteString(`<defs>`)
	b.WriteString(`<linearGradient id="main" x1="0" y1="0" x2="1" y2="1">`)
	b.WriteString(`<stop offset="0" stop-color="` + c.bg + `"/>`)
	b.WriteString(`<stop offset="0.5" stop-color="` + c.accent + `"/>`)
	b.WriteString(`<stop offset="1" stop-color="#0a0a0a"/>`)
	b.WriteString(`</linearGradient>`)
	b.WriteString(`<linearGradient id="overlay" x1="0" y1="0" x2="0" y2="1">`)
	b.WriteString(`<stop offset="0" stop-color="rgba(255,255,255,0.2)"/>`)
	b.WriteString(`<stop offset="0.5" stop-color="rgba(0,0,0,0.1)"/>`)
	b.WriteString(`<stop offset="1" stop-color="rgba(0,0,0,0.7)"/>`)
	b.WriteString(`</linearGradient>`)
	b.WriteString(`<filter id="shadow" x="-50%" y="-50%" width="200%" height="200%"><feDropShadow dx="2" dy="2" stdDeviation="3" flood-opacity="0.3"/></filter>`)
	b.WriteString(`<pattern id="dots" x="20" y="20" width="20" height="20" patternUnits="userSpaceOnUse"><circle cx="10" cy="10" r="2" fill="rgba(255,255,255,0.1)"/></pattern>`)
	b.WriteString(`</defs>`)
	b.WriteString(`<rect width="300" height="450" fill="url(#main)"/>`)
	b.WriteString(`<rect width="300" height="450" fill="url(#dots)"/>`)
	b.WriteString(`<circle cx="50" cy="80" r="100" fill="rgba(255,255,255,0.15)" filter="url(#shadow)"/>`)
	b.WriteString(`<circle cx="250" cy="120" r="80" fill="rgba(0,0,0,0.2)" filter="url(#shadow)"/>`)
	b.WriteString(`<circle cx="150" cy="200" r="120" fill="rgba(` + strconv.Itoa(ar) + `,` + strconv.Itoa(ag) + `,` + strconv.Itoa(ab) + `,0.1)" filter="url(#shadow)"/>`)
	b.WriteString(`<polygon points="0,250 100,280 0,450" fill="rgba(0,0,0,0.3)"/>`)
	b.WriteString(`<polygon points="300,350 200,300 300,450" fill="rgba(255,255,255,0.08)"/>`)
	b.WriteString(`<rect width="300" height="450" fill="url(#overlay)"/>`)
	b.WriteString(`<rect x="0" y="320" width="300" height="130" fill="rgba(0,0,0,0.75)"/>`)
	b.WriteString(`<text x="150" y="375" font-family="Arial, sans-serif" font-size="22" font-weight="bold" fill="#ffffff" text-anchor="middle" letter-spacing="1">` + escapeXML(truncate(title)) + `</text>`)
	if year != "" {
		b.WriteString(`<text x="150" y="405" font-family="Arial, sans-serif" font-size="14" fill="` + c.light + `" text-anchor="middle">` + escapeXML(year) + `</text>`)
	}
	b.WriteString(`<line x1="40" y1="318" x2="260" y2="318" stroke="` + c.accent + `" stroke-width="2" opacity="0.6"/>`)
	b.WriteString(`</svg>`)

	return encode(b.String())
}

// DecodeSVG returns the raw SVG markup embedded in a data URI produced by this
// package. It reports false for anything that is not a base64 SVG data URI.
func DecodeSVG(dataURI string) ([]byte, bool) {
	const prefix = "data:image/svg+xml;base64,"
	if !strings.HasPrefix(dataURI, prefix) {
		return nil, false
	}
	raw, err := base64.StdEncoding.DecodeString(dataURI[len(prefix):])
	if err != nil {
		return nil, false
	}
	return raw, true
}
