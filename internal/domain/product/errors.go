package product

import "fmt"

// InsufficientStockError indica que uma operação pediu mais unidades do que o
// estoque disponível do produto
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para o produto %s: disponível %d, solicitado %d",
		e.ProductName, e.Available, e.Requested)
}
