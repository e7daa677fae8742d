package fortune

import (
	"VinaLuck/cmn"
	"VinaLuck/cmn/llm"
	"VinaLuck/cmn/luck_core"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	HandleQueryZodiac(c *gin.Context)
	HandleDaily(c *gin.Context)
}

type handler struct {
}

func NewHandler() Handler {
	return &handler{}
}

// HandleQueryZodiac 按出生年份查询生肖
func (h *handler) HandleQueryZodiac(c *gin.Context) {
	yearStr := c.Query("year")
	if yearStr == "" {
		z.Error("year is empty")
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "出生年份不能为空",
		})
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		z.Error("invalid year", zap.String("year", yearStr))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "出生年份格式错误",
		})
		return
	}

	zodiacId := luck_core.GetZodiacFromYear(year)

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "查询成功",
		Data:   []byte(`{"zodiacId":"` + zodiacId + `"}`),
	})
}

// HandleDaily 查询每日运势
// 传齐 month/day/hour 三个参数则进入深度分析
func (h *handler) HandleDaily(c *gin.Context) {
	zodiacId := c.Query("zodiacId")
	if zodiacId == "" {
		z.Error("zodiacId is empty")
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "生肖标识不能为空",
		})
		return
	}

	lang := luck_core.NormalizeLang(c.Query("lang"))

	birthYear := 0
	if s := c.Query("birthYear"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			birthYear = v
		}
	}

	var deep *luck_core.DeepStats
	monthStr := c.Query("month")
	dayStr := c.Query("day")
	hourStr := c.Query("hour")
	if monthStr != "" && dayStr != "" && hourStr != "" {
		month, errM := strconv.Atoi(monthStr)
		day, errD := strconv.Atoi(dayStr)
		hour, errH := strconv.Atoi(hourStr)
		if errM == nil && errD == nil && errH == nil {
			deep = &luck_core.DeepStats{Month: month, Day: day, Hour: hour}
		}
	}

	result := luck_core.GetDailyFortune(zodiacId, birthYear, deep, lang)

	// 大模型增强（可选），需要姓名与完整生辰
	var enrichment *llm.FortuneEnrichment
	name := c.Query("name")
	if llm.Enabled() && name != "" && deep != nil && birthYear != 0 {
		today := time.Now().Format("02/01/2006")
		enrichment = llm.EnrichFortune(
			name, c.Query("gender"),
			dayStr, monthStr, strconv.Itoa(birthYear), hourStr,
			zodiacId, today, string(lang))
	}

	type reply struct {
		Result     luck_core.DailyFortune `json:"result"`
		Enrichment *llm.FortuneEnrichment `json:"enrichment,omitempty"`
	}

	replyJson, err := json.Marshal(reply{Result: result, Enrichment: enrichment})
	if err != nil {
		z.Error("failed to marshal daily fortune", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "运势结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "查询成功",
		Data:   replyJson,
	})
}
