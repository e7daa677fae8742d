package market

import (
	"VinaLuck/cmn"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	HandleQueryRates(c *gin.Context)
}

type handler struct {
}

func NewHandler() Handler {
	return &handler{}
}

// HandleQueryRates 查询行情
func (h *handler) HandleQueryRates(c *gin.Context) {
	rates := ticker.Rates()

	ratesJson, err := json.Marshal(rates)
	if err != nil {
		z.Error("failed to marshal market rates", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "行情序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status:   0,
		Msg:      "查询成功",
		Data:     ratesJson,
		RowCount: int64(len(rates)),
	})
}
