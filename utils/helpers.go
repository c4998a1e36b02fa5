package utils

const (
	MinNumSales = 1
	MaxNumSales = 300
)

func IsValidNumSales(n int) bool {
	return n >= MinNumSales && n <= MaxNumSales
}
