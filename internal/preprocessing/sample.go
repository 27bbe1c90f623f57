package preprocessing

import (
	"github.com/Nebiyou-x/Fraud-detection/internal/domain/data"
	"github.com/Nebiyou-x/Fraud-detection/internal/domain/schema"
)

// Sample table layout
const (
	SampleTableName     = "transactions"
	ColumnAge           = "age"
	ColumnPurchaseValue = "purchase_value"
)

// SampleTable returns a fresh copy of the reference table:
// age = [25, NULL, 40], purchase_value = [100, 200, 150]
func SampleTable() *schema.Table {
	t, err := schema.NewTable(SampleTableName,
		schema.NewColumn(ColumnAge, data.Float(25), data.Null(), data.Float(40)),
		schema.NewColumn(ColumnPurchaseValue, data.Floats(100, 200, 150)...),
	)
	if err != nil {
		// the layout above is fixed; an error here is a programming mistake
		panic(err)
	}
	return t
}
