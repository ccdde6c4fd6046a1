package ir

// Truth reports whether v is truthy: not null, false, zero, empty, or a
// zero duration.
func Truth(v Value) bool {
	switch v.typ {
	case StringType, RawStringType:
		return v.s != ""
	case CharType, Int32Type, Int64Type, BoolType:
		return v.i != 0
	case Float32Type:
		return v.f32 != 0
	case Float64Type:
		return v.f != 0
	case DecimalType:
		return !v.dec.IsZero()
	case DateType, DateTimeType, ZonedDateTimeType:
		return !v.t.IsZero()
	case DurationType:
		return v.dur != Duration{}
	case BinaryType:
		return len(v.b) != 0
	case NullType:
		return false
	default:
		panic("type")
	}
}
