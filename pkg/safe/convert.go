// Package safe provides numeric conversions and arithmetic with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Integer is the set of integer kinds accepted by the conversions.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 converts an integer to uint32 with range validation.
func Uint32[T Integer](v T) (uint32, error) {
	switch value := any(v).(type) {
	case int:
		if value < 0 || int64(value) > math.MaxUint32 {
			return 0, fmt.Errorf("value %d out of uint32 range", v)
		}
	case int32:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint32 range", v)
		}
	case int64:
		if value < 0 || value > math.MaxUint32 {
			return 0, fmt.Errorf("value %d out of uint32 range", v)
		}
	case uint:
		if uint64(value) > math.MaxUint32 {
			return 0, fmt.Errorf("value %d out of uint32 range", v)
		}
	case uint32:
	case uint64:
		if value > math.MaxUint32 {
			return 0, fmt.Errorf("value %d out of uint32 range", v)
		}
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	return uint32(v), nil
}

// Int64 converts an integer to int64, rejecting unsigned values above math.MaxInt64.
// Satoshi amounts pass through it on their way into wire.TxOut.
func Int64[T Integer](v T) (int64, error) {
	switch value := any(v).(type) {
	case int:
		return int64(value), nil
	case int32:
		return int64(value), nil
	case int64:
		return value, nil
	case uint:
		if uint64(value) > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of int64 range", v)
		}
	case uint32:
	case uint64:
		if value > math.MaxInt64 {
			return 0, fmt.Errorf("value %d out of int64 range", v)
		}
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	return int64(v), nil
}

// AddUint64 sums values and fails instead of wrapping around.
func AddUint64(values ...uint64) (uint64, error) {
	var sum uint64
	for _, v := range values {
		if sum > math.MaxUint64-v {
			return 0, fmt.Errorf("sum overflows uint64 adding %d to %d", v, sum)
		}
		sum += v
	}
	return sum, nil
}

// SubUint64 returns a-b and fails when b exceeds a.
func SubUint64(a, b uint64) (uint64, error) {
	if b > a {
		return 0, fmt.Errorf("value %d exceeds %d", b, a)
	}
	return a - b, nil
}
