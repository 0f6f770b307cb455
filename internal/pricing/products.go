package pricing

// Product identifies a priced insurance product.
type Product string

const ProductSinglePremiumEndowment Product = "single-premium-endowment"

// Age band upper bounds shared by the endowment tables: ≤10, ≤20, ≤30, ≤40,
// ≤50, ≤60 and an open band above 60.
var endowmentBands = []int{10, 20, 30, 40, 50, 60}

// Premium per 100,000 sum assured for the single premium endowment plan.
var singlePremiumEndowment = mustRateTable(5, 25,
	[]int{10, 15, 25},
	endowmentBands,
	[][]int64{
		{77850, 77905, 78010, 78180, 78630, 79710, 81560}, // 10 years
		{66605, 66690, 66865, 67200, 68020, 69840, 72910}, // 15 years
		{49780, 49930, 50270, 50980, 52640, 56120, 61340}, // 25 years
	},
)

var rateTables = map[Product]*RateTable{
	ProductSinglePremiumEndowment: singlePremiumEndowment,
}

// TableFor returns the rate table of p or an *UnsupportedProductError.
func TableFor(p Product) (*RateTable, error) {
	t, ok := rateTables[p]
	if !ok {
		return nil, &UnsupportedProductError{Product: string(p)}
	}
	return t, nil
}

// Products lists every product the engine can price.
func Products() []Product {
	return []Product{ProductSinglePremiumEndowment}
}
