package dream

import (
	"VinaLuck/cmn"
	"VinaLuck/cmn/llm"
	"VinaLuck/cmn/luck_core"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type Handler interface {
	HandleInterpret(c *gin.Context)
	HandleQueryNumbers(c *gin.Context)
}

type handler struct {
}

func NewHandler() Handler {
	return &handler{}
}

// HandleInterpret 处理解梦请求
// 本地引擎的结果必达，大模型增强缺省不影响主流程
func (h *handler) HandleInterpret(c *gin.Context) {
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
		Keyword string `json:"keyword"`
		Emotion string `json:"emotion"`
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

	lang := luck_core.NormalizeLang(d.Lang)

	result := luck_core.InterpretDream(d.Keyword, lang)

	// 大模型增强（可选）
	var enrichment *llm.DreamEnrichment
	if llm.Enabled() {
		enrichment = llm.EnrichDream(d.Keyword, d.Emotion, string(lang))
	}

	// 异步写查询日志，失败只记录不阻断
	go func() {
		numbersJson, err := json.Marshal(result.NumberPool)
		if err != nil {
			z.Error("failed to marshal dream numbers", zap.Error(err))
			return
		}
		record := cmn.TDreamLog{
			Keyword: result.NormalizedKeyword,
			Lang:    string(lang),
			Omen:    result.Omen,
			Numbers: datatypes.JSON(numbersJson),
		}
		if err := cmn.GormDB.Create(&record).Error; err != nil {
			z.Error("failed to create dream log", zap.Error(err))
		}
	}()

	type reply struct {
		Result     luck_core.DreamInterpretation `json:"result"`
		Enrichment *llm.DreamEnrichment          `json:"enrichment,omitempty"`
	}

	replyJson, err := json.Marshal(reply{Result: result, Enrichment: enrichment})
	if err != nil {
		z.Error("failed to marshal dream result", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "解梦结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "解梦成功",
		Data:   replyJson,
	})
}

// HandleQueryNumbers 查询梦境号码池
func (h *handler) HandleQueryNumbers(c *gin.Context) {
	keyword := c.Query("keyword")
	zodiacId := c.Query("zodiacId")

	pool := luck_core.AnalyzeDream(keyword, zodiacId)

	poolJson, err := json.Marshal(pool)
	if err != nil {
		z.Error("failed to marshal number pool", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "号码池序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "查询成功",
		Data:   poolJson,
	})
}
