// This file implements XML Schema built-in type to Go type mapping.

package generator

// xsdTypeToGoType maps an XML Schema built-in type tag (without its
// namespace prefix) to a Go type. The second result is false when the tag
// is not a recognized built-in, which means it names a user-defined type.
func xsdTypeToGoType(tag string) (string, bool) {
	switch tag {
	case "string", "normalizedString", "token", "anyURI", "QName", "NOTATION",
		"language", "Name", "NCName", "ID", "IDREF", "ENTITY", "NMTOKEN",
		"duration", "gYear", "gYearMonth", "gMonth", "gMonthDay", "gDay",
		"date", "time":
		return "string", true
	case "boolean":
		return "bool", true
	case "int":
		return "int32", true
	case "integer", "long", "nonPositiveInteger", "negativeInteger",
		"nonNegativeInteger", "positiveInteger":
		return "int64", true
	case "short":
		return "int16", true
	case "byte":
		return "int8", true
	case "unsignedLong":
		return "uint64", true
	case "unsignedInt":
		return "uint32", true
	case "unsignedShort":
		return "uint16", true
	case "unsignedByte":
		return "uint8", true
	case "float":
		return "float32", true
	case "double", "decimal":
		return "float64", true
	case "dateTime":
		return "time.Time", true
	case "base64Binary", "hexBinary":
		return "[]byte", true
	case "anyType", "anySimpleType":
		return "any", true
	default:
		return "", false
	}
}
