package usecase

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// tileMarker matches CDN tile-size tokens such as p64x64 or s130x130 after
// a path or transform delimiter. The trailing delimiter is checked by
// tileMarkers so that adjacent tokens sharing one are all found.
var tileMarker = regexp.MustCompile(`(^|[/_.=\-])([ps])(\d{2,4})x(\d{2,4})`)

const tileTerminators = "/_.&-"

const (
	// maxLowResTile is the largest tile side that still counts as a
	// minimal tile.
	maxLowResTile = 160
	// upgradedTile replaces minimal tiles in UpgradeThumbnailURL.
	upgradedTile = 720
)

// IsLowResolutionURL reports whether the URL path carries a minimal-tile
// marker. The query string is ignored: CDN transform flags there say
// nothing reliable about the stored asset.
func IsLowResolutionURL(raw string) bool {
	if raw == "" {
		return false
	}
	path := raw
	if u, err := url.Parse(raw); err == nil {
		path = u.Path
	} else if i := strings.IndexAny(raw, "?#"); i >= 0 {
		path = raw[:i]
	}
	for _, m := range tileMarkers(path) {
		if isMinimalTile(path[m[6]:m[7]], path[m[8]:m[9]]) {
			return true
		}
	}
	return false
}

// UpgradeThumbnailURL rewrites every minimal-tile marker in raw, query
// included, to the 720x720 tile. The CDN may still serve the small original;
// callers must treat the result as low quality.
func UpgradeThumbnailURL(raw string) string {
	side := strconv.Itoa(upgradedTile)
	var b strings.Builder
	last := 0
	for _, m := range tileMarkers(raw) {
		if !isMinimalTile(raw[m[6]:m[7]], raw[m[8]:m[9]]) {
			continue
		}
		b.WriteString(raw[last:m[6]])
		b.WriteString(side + "x" + side)
		last = m[9]
	}
	if last == 0 {
		return raw
	}
	b.WriteString(raw[last:])
	return b.String()
}

// tileMarkers returns the submatch indexes of every tile token in s that
// ends the string or is followed by a delimiter.
func tileMarkers(s string) [][]int {
	var out [][]int
	for _, m := range tileMarker.FindAllStringSubmatchIndex(s, -1) {
		if end := m[1]; end == len(s) || strings.IndexByte(tileTerminators, s[end]) >= 0 {
			out = append(out, m)
		}
	}
	return out
}

func isMinimalTile(w, h string) bool {
	width, err := strconv.Atoi(w)
	if err != nil {
		return false
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return false
	}
	return width <= maxLowResTile && height <= maxLowResTile
}
