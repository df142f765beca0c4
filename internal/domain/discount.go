package domain

import (
	"fmt"
	"math"
)

type DiscountKind string

const (
	DiscountNone       DiscountKind = "none"
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// DiscountPolicy задаёт скидку, применяемую к цене брони один раз при создании.
// Rate используется для процентной скидки (доля 0..1), Amount для фиксированной.
type DiscountPolicy struct {
	Kind   DiscountKind
	Rate   float64
	Amount int64
}

func NoDiscount() DiscountPolicy {
	return DiscountPolicy{Kind: DiscountNone}
}

func PercentageDiscount(rate float64) (DiscountPolicy, error) {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return DiscountPolicy{}, fmt.Errorf("%w: percentage %v not in [0, 1]", ErrInvalidDiscount, rate)
	}
	return DiscountPolicy{Kind: DiscountPercentage, Rate: rate}, nil
}

func FixedAmountDiscount(amount int64) (DiscountPolicy, error) {
	if amount < 0 {
		return DiscountPolicy{}, fmt.Errorf("%w: fixed amount %d is negative", ErrInvalidDiscount, amount)
	}
	return DiscountPolicy{Kind: DiscountFixed, Amount: amount}, nil
}

// NewDiscountPolicy собирает политику из настроек. Для процентной скидки value задаёт долю,
// для фиксированной сумму в минимальных единицах.
func NewDiscountPolicy(kind string, value float64) (DiscountPolicy, error) {
	switch DiscountKind(kind) {
	case "", DiscountNone:
		return NoDiscount(), nil
	case DiscountPercentage:
		return PercentageDiscount(value)
	case DiscountFixed:
		return FixedAmountDiscount(int64(math.Round(value)))
	default:
		return DiscountPolicy{}, fmt.Errorf("%w: unknown discount kind %q", ErrInvalidDiscount, kind)
	}
}

// Apply возвращает итоговую цену, никогда не меньше нуля.
func (p DiscountPolicy) Apply(price int64) int64 {
	var out int64
	switch p.Kind {
	case DiscountPercentage:
		out = int64(math.Round(float64(price) * (1 - p.Rate)))
	case DiscountFixed:
		out = price - p.Amount
	default:
		out = price
	}
	return max(out, 0)
}
