// Package phone normalizes caller-supplied phone numbers to the canonical 10-digit form.
package phone

// Normalizer reduces raw phone input to 10 digits, stripping a recognized 2-digit
// country prefix. WhatsApp ids for some countries carry an extra mobile marker after
// the country code (e.g. "521" + 10 digits for Mexico), so both the 12-digit and the
// 13-digit prefixed forms are accepted.
type Normalizer struct {
	countryPrefix string
}

// NewNormalizer returns a Normalizer for the given 2-digit country prefix.
func NewNormalizer(countryPrefix string) *Normalizer {
	return &Normalizer{countryPrefix: countryPrefix}
}

// Normalize strips non-digit characters and returns the canonical 10-digit number.
// Accepts a bare 10-digit number, a 12-digit number starting with the country prefix,
// or a 13-digit number starting with the country prefix followed by the "1" mobile
// marker. Any other shape returns "". Normalize is idempotent.
func (n *Normalizer) Normalize(raw string) string {
	d := digitsOnly(raw)
	switch {
	case len(d) == 13 && d[:3] == n.countryPrefix+"1":
		return d[3:]
	case len(d) == 12 && d[:2] == n.countryPrefix:
		return d[2:]
	case len(d) == 10:
		return d
	}
	return ""
}

func digitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
