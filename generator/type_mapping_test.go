package generator

import "testing"

func TestXSDTypeToGoType(t *testing.T) {
	tests := []struct {
		tag     string
		want    string
		builtin bool
	}{
		{"string", "string", true},
		{"token", "string", true},
		{"date", "string", true},
		{"boolean", "bool", true},
		{"int", "int32", true},
		{"long", "int64", true},
		{"integer", "int64", true},
		{"unsignedShort", "uint16", true},
		{"float", "float32", true},
		{"double", "float64", true},
		{"decimal", "float64", true},
		{"dateTime", "time.Time", true},
		{"base64Binary", "[]byte", true},
		{"anyType", "any", true},
		{"Address", "", false},
		{"UserType", "", false},
	}
	for _, tt := range tests {
		got, builtin := xsdTypeToGoType(tt.tag)
		if got != tt.want || builtin != tt.builtin {
			t.Errorf("xsdTypeToGoType(%q) = (%q, %v), want (%q, %v)", tt.tag, got, builtin, tt.want, tt.builtin)
		}
	}
}
