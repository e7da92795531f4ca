package application

import "fmt"

// Money is an amount in US cents.
type Money int64

// Dollars returns the amount for whole dollars and cents.
func Dollars(dollars, cents int64) Money {
	return Money(dollars*100 + cents)
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return int64(m)
}

// Times multiplies the amount by n.
func (m Money) Times(n int) Money {
	return m * Money(n)
}

// String formats the amount as $D.CC.
func (m Money) String() string {
	sign := ""
	cents := int64(m)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
