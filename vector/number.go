package vector

// Signed is any signed integer type
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is any unsigned integer type
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is any integer type
type Integer interface {
	Signed | Unsigned
}

// Float is any floating-point type
type Float interface {
	~float32 | ~float64
}

// Number is the set of component types a Vector2 can hold
type Number interface {
	Integer | Float
}

// Common instantiations
type (
	Vector2i   = Vector2[int]
	Vector2i8  = Vector2[int8]
	Vector2i16 = Vector2[int16]
	Vector2i32 = Vector2[int32]
	Vector2i64 = Vector2[int64]
	Vector2u   = Vector2[uint]
	Vector2u8  = Vector2[uint8]
	Vector2u16 = Vector2[uint16]
	Vector2u32 = Vector2[uint32]
	Vector2u64 = Vector2[uint64]
	Vector2f   = Vector2[float32]
	Vector2d   = Vector2[float64]
)
