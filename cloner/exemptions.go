package cloner

// exemptFields lists record fields whose values carry configuration
// semantics rather than entity references. Several of them (external
// client IDs, SAML attribute names, OIDC claim names) legitimately hold
// UUID-shaped strings in real exports, so shape matching alone would
// corrupt them.
//
// The set is fixed and documented rather than inferred from the document.
// It may not be exhaustive over every record type a realm export can
// carry; an unlisted configuration field holding a UUID-shaped value will
// be substituted.
var exemptFields = map[string]struct{}{
	"realm":             {},
	"clientId":          {},
	"name":              {},
	"alias":             {},
	"protocol":          {},
	"protocolMapper":    {},
	"authenticator":     {},
	"providerId":        {},
	"providerType":      {},
	"attribute.name":    {},
	"user.attribute":    {},
	"claim.name":        {},
	"user.session.note": {},
}

// IsExemptField reports whether a field name is exempt from identifier
// substitution regardless of its value's shape.
func IsExemptField(name string) bool {
	_, ok := exemptFields[name]
	return ok
}
