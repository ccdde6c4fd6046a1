package ir

import "fmt"

// Type is the kind of a Value.
type Type int

const (
	NullType Type = iota
	StringType
	RawStringType
	CharType
	Int32Type
	Int64Type
	Float32Type
	Float64Type
	DecimalType
	BoolType
	DateType
	DateTimeType
	ZonedDateTimeType
	DurationType
	BinaryType
)

var typeNames = map[Type]string{
	NullType:          "Null",
	StringType:        "String",
	RawStringType:     "RawString",
	CharType:          "Char",
	Int32Type:         "Int32",
	Int64Type:         "Int64",
	Float32Type:       "Float32",
	Float64Type:       "Float64",
	DecimalType:       "Decimal",
	BoolType:          "Bool",
	DateType:          "Date",
	DateTimeType:      "DateTime",
	ZonedDateTimeType: "ZonedDateTime",
	DurationType:      "Duration",
	BinaryType:        "Binary",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, s := range typeNames {
		if s == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		NullType,
		StringType,
		RawStringType,
		CharType,
		Int32Type,
		Int64Type,
		Float32Type,
		Float64Type,
		DecimalType,
		BoolType,
		DateType,
		DateTimeType,
		ZonedDateTimeType,
		DurationType,
		BinaryType,
	}
}

// IsNumber reports whether t is an integer, floating point or decimal kind.
func (t Type) IsNumber() bool {
	switch t {
	case Int32Type, Int64Type, Float32Type, Float64Type, DecimalType:
		return true
	default:
		return false
	}
}

// IsText reports whether t carries a string payload.
func (t Type) IsText() bool {
	return t == StringType || t == RawStringType
}

// IsTime reports whether t carries a time.Time payload.
func (t Type) IsTime() bool {
	switch t {
	case DateType, DateTimeType, ZonedDateTimeType:
		return true
	default:
		return false
	}
}
