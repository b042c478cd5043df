package endpoints

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/http/api/tools/packets"
	"github.com/MOSHAROF-4246/Ramadan-Super-App/internal/zakat"
)

type ZakatController struct {
	goldPrice decimal.Decimal
}

// ZakatModule mounts POST /zakat priced at goldPricePerGram.
func ZakatModule(goldPricePerGram decimal.Decimal) api.Module {
	ctl := &ZakatController{goldPrice: goldPricePerGram}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/zakat", ctl.calculate)
	})
}

// POST /api/zakat
func (z *ZakatController) calculate(ctx *gin.Context) (any, *api.APIError) {
	var request packets.ZakatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, api.BadRequest(err.Error())
	}

	price := z.goldPrice
	if request.GoldPricePerGram != nil {
		if !request.GoldPricePerGram.IsPositive() {
			return nil, api.BadRequest("gold_price_per_gram must be positive")
		}
		price = *request.GoldPricePerGram
	}

	result, err := zakat.Calculate(request.Assets, request.Liabilities, zakat.Nisab(price))
	if errors.Is(err, zakat.ErrNegativeAmount) {
		return nil, api.BadRequest(err.Error())
	}
	if err != nil {
		log.Error().Err(err).Msg("zakat calculation failed")
		return nil, api.Internal("Failed to calculate zakat")
	}
	return result, nil
}
