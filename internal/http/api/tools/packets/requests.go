package packets

import (
	"github.com/shopspring/decimal"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/zakat"
)

// body for a zakat calculation. GoldPricePerGram overrides the configured price.
type ZakatRequest struct {
	Assets           zakat.Assets      `json:"assets"`
	Liabilities      zakat.Liabilities `json:"liabilities"`
	GoldPricePerGram *decimal.Decimal  `json:"gold_price_per_gram"`
}

type TasbihTargetRequest struct {
	Target int `json:"target" binding:"required,min=1"`
}
