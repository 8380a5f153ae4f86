package evaluation

// defaultColorRGB stands in for an absent color. The workbook reader
// reports absent colors as ""; normalization maps those here so that two
// unstyled cells always agree.
const defaultColorRGB = "00000000"

// rgbOrDefault returns the color string itself, or defaultColorRGB when the
// color is absent.
func rgbOrDefault(rgb string) string {
	if rgb == "" {
		return defaultColorRGB
	}
	return rgb
}

// ColorsEqual reports whether two color strings denote the same RGB. Only
// the trailing 6 hex characters are compared: the leading alpha pair comes
// back as either "00" or "FF" for visually identical colors after an
// import/export round-trip, so it carries no signal.
func ColorsEqual(a, b string) bool {
	return lastSix(rgbOrDefault(a)) == lastSix(rgbOrDefault(b))
}

// lastSix returns the trailing 6 characters, or the whole string when it is
// shorter than that.
func lastSix(s string) string {
	if len(s) <= 6 {
		return s
	}
	return s[len(s)-6:]
}
