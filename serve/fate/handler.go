package fate

import (
	"VinaLuck/cmn"
	"VinaLuck/cmn/llm"
	"VinaLuck/cmn/luck_core"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type Handler interface {
	HandleAnalyze(c *gin.Context)
}

type handler struct {
}

func NewHandler() Handler {
	return &handler{}
}

// HandleAnalyze 处理八字分析请求
func (h *handler) HandleAnalyze(c *gin.Context) {
	var req cmn.ReqProto
	err := c.ShouldBindJSON(&req)
	if err != nil {
		z.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "请求参数错误，请检查是否符合请求协议",
		})
		return
	}

	type data struct {
		Name    string `json:"name"`
		Gender  string `json:"gender"`
		Day     string `json:"day"`
		Month   string `json:"month"`
		Year    string `json:"year"`
		Hour    string `json:"hour"`
		Topic   string `json:"topic"`
		Concern string `json:"concern"`
		Lang    string `json:"lang"`
	}

	var d data
	err = json.Unmarshal(req.Data, &d)
	if err != nil {
		z.Error("failed to unmarshal request data", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "请求数据格式错误",
		})
		return
	}

	if d.Name == "" {
		z.Error("name is empty")
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "姓名不能为空",
		})
		return
	}

	lang := luck_core.NormalizeLang(d.Lang)

	result := luck_core.AnalyzeFate(d.Name, d.Gender, d.Day, d.Month, d.Year, d.Hour, d.Topic, d.Concern, lang)

	// 大模型增强（可选）
	var enrichment *llm.SajuEnrichment
	if llm.Enabled() {
		today := time.Now().Format("02/01/2006")
		enrichment = llm.EnrichSaju(d.Name, d.Gender, d.Day, d.Month, d.Year, d.Hour, d.Topic, d.Concern, today, string(lang))
	}

	// 异步写报告日志，失败只记录不阻断
	dominant, weak := result.FiveElements.DominantWeak()
	go func() {
		numbersJson, err := json.Marshal(result.LuckyNumbers)
		if err != nil {
			z.Error("failed to marshal fate lucky numbers", zap.Error(err))
			return
		}
		record := cmn.TFateReportLog{
			Name:            d.Name,
			Topic:           d.Topic,
			Lang:            string(lang),
			DominantElement: dominant,
			WeakElement:     weak,
			LuckyNumbers:    datatypes.JSON(numbersJson),
		}
		if err := cmn.GormDB.Create(&record).Error; err != nil {
			z.Error("failed to create fate report log", zap.Error(err))
		}
	}()

	type reply struct {
		Result     luck_core.FateResult `json:"result"`
		Enrichment *llm.SajuEnrichment  `json:"enrichment,omitempty"`
	}

	replyJson, err := json.Marshal(reply{Result: result, Enrichment: enrichment})
	if err != nil {
		z.Error("failed to marshal fate result", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "分析结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "分析成功",
		Data:   replyJson,
	})
}
