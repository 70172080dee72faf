package binance

import "mbx/pkg/core"

// IcebergOrder is implemented by order requests that may carry an iceberg quantity.
type IcebergOrder interface {
	IcebergQuantity() *core.Decimal
	TimeInForceValue() *core.TimeInForce
}

// ValidateIceberg rejects iceberg orders whose time in force is anything but GTC.
// An absent time in force counts as not GTC.
func ValidateIceberg(o IcebergOrder) error {
	if o.IcebergQuantity() == nil {
		return nil
	}
	if tif := o.TimeInForceValue(); tif != nil && *tif == core.GTC {
		return nil
	}
	return core.NewValidationError("timeInForce", "time in force has to be GTC for iceberg orders")
}
