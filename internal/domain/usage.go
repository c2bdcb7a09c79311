package domain

import "github.com/shopspring/decimal"

// BitsPerMegabyte is the conversion factor used for every stored bandwidth
// figure: 8 bits per byte, 1024*1024 bytes per megabyte.
const BitsPerMegabyte = 8 * 1024 * 1024

// BitsToMB converts a bit count to megabytes rounded to the given number of
// fractional digits. Pure conversion; callers resolve absent usage to zero
// before calling.
func BitsToMB(bits int64, precision int32) decimal.Decimal {
	return decimal.NewFromInt(bits).
		Div(decimal.NewFromInt(BitsPerMegabyte)).
		Round(precision)
}
