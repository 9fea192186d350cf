package payload

import "strings"

// VCard describes a vCard 3.0 contact payload. Every field is optional;
// empty fields are omitted from the output entirely.
type VCard struct {
	GivenName  string
	FamilyName string
	Phone      string
	Email      string
	Org        string
	Title      string
	URL        string
}

func (VCard) Kind() Kind { return KindVCard }

// buildVCard emits a minimal vCard 3.0 block. Optional property lines appear
// in a fixed order: ORG, TITLE, TEL, EMAIL, URL.
func buildVCard(v VCard) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + v.FamilyName + ";" + v.GivenName + ";;;",
		"FN:" + strings.TrimSpace(v.GivenName+" "+v.FamilyName),
	}
	if v.Org != "" {
		lines = append(lines, "ORG:"+v.Org)
	}
	if v.Title != "" {
		lines = append(lines, "TITLE:"+v.Title)
	}
	if v.Phone != "" {
		lines = append(lines, "TEL;TYPE=CELL:"+v.Phone)
	}
	if v.Email != "" {
		lines = append(lines, "EMAIL;TYPE=INTERNET:"+v.Email)
	}
	if v.URL != "" {
		lines = append(lines, "URL:"+v.URL)
	}
	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n")
}
