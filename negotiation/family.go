package negotiation

// Family identifies one Accept* header family.
type Family string

// Header families subject to negotiation.
const (
	// FamilyMediaType negotiates the Accept header.
	FamilyMediaType Family = "media_type"

	// FamilyLanguage negotiates the Accept-Language header.
	FamilyLanguage Family = "language"

	// FamilyEncoding negotiates the Accept-Encoding header.
	FamilyEncoding Family = "encoding"

	// FamilyCharset negotiates the Accept-Charset header.
	FamilyCharset Family = "charset"
)

// Families lists all header families in evaluation order.
var Families = []Family{FamilyMediaType, FamilyLanguage, FamilyEncoding, FamilyCharset}

// HeaderName returns the request header name negotiated by the family.
func (f Family) HeaderName() string {
	switch f {
	case FamilyMediaType:
		return "Accept"
	case FamilyLanguage:
		return "Accept-Language"
	case FamilyEncoding:
		return "Accept-Encoding"
	case FamilyCharset:
		return "Accept-Charset"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (f Family) String() string {
	return string(f)
}
