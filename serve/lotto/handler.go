package lotto

import (
	"VinaLuck/cmn"
	"VinaLuck/cmn/luck_core"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type Handler interface {
	HandleRecommend(c *gin.Context)
	HandleQueryResults(c *gin.Context)
	HandleSaveTicket(c *gin.Context)
	HandleQueryTickets(c *gin.Context)
	HandleDeleteTicket(c *gin.Context)
}

type handler struct {
}

func NewHandler() Handler {
	return &handler{}
}

// HandleRecommend 处理智能推荐请求
// 种子号码优先入选，补位用系统随机源，重复请求会补出不同组合
func (h *handler) HandleRecommend(c *gin.Context) {
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
		Type        string   `json:"type"`
		SeedNumbers []string `json:"seedNumbers"`
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

	shape := luck_core.ShapeForType(d.Type)
	src := luck_core.NewSystemSource()
	numbers := luck_core.GenerateSmartLotto(shape, d.SeedNumbers, src)

	recommendation := Recommendation{
		GameType: d.Type,
		Numbers:  numbers,
	}
	if d.Type == "power" {
		recommendation.BonusNumber = luck_core.GenerateBonusNumber(shape, numbers, src)
	}

	recommendationJson, err := json.Marshal(recommendation)
	if err != nil {
		z.Error("failed to marshal recommendation", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "推荐结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "推荐成功",
		Data:   recommendationJson,
	})
}

// HandleQueryResults 查询开奖结果
func (h *handler) HandleQueryResults(c *gin.Context) {
	results := QueryDrawResults()

	resultsJson, err := json.Marshal(results)
	if err != nil {
		z.Error("failed to marshal draw results", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "开奖结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status:   0,
		Msg:      "查询成功",
		Data:     resultsJson,
		RowCount: int64(len(results)),
	})
}

// HandleSaveTicket 保存号码组合
// 访客身份由匿名session标识，首次保存时创建
func (h *handler) HandleSaveTicket(c *gin.Context) {
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
		GameType    string   `json:"gameType"`
		Numbers     []string `json:"numbers"`
		BonusNumber string   `json:"bonusNumber"`
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

	shape := luck_core.ShapeForType(d.GameType)
	if len(d.Numbers) != shape.Count {
		z.Error("invalid ticket numbers count", zap.String("gameType", d.GameType), zap.Int("count", len(d.Numbers)))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "号码个数与玩法不符",
		})
		return
	}

	visitorId, err := getOrCreateVisitorId(c)
	if err != nil {
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "创建访客会话失败",
		})
		return
	}

	numbersJson, err := json.Marshal(d.Numbers)
	if err != nil {
		z.Error("failed to marshal ticket numbers", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "号码序列化失败",
		})
		return
	}

	record := cmn.TSavedTicket{
		VisitorId:   visitorId,
		RefCode:     cmn.RandDigits(refCodeLength),
		GameType:    d.GameType,
		Numbers:     datatypes.JSON(numbersJson),
		BonusNumber: d.BonusNumber,
	}
	err = cmn.GormDB.Create(&record).Error
	if err != nil {
		z.Error("failed to create saved ticket", zap.Error(err), zap.String("visitorId", visitorId.String()))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "保存号码组合失败",
		})
		return
	}

	ticketJson, err := json.Marshal(toSavedTicket(record))
	if err != nil {
		z.Error("failed to marshal saved ticket", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "票据序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "保存成功",
		Data:   ticketJson,
	})
}

// HandleQueryTickets 查询当前访客保存的号码组合
func (h *handler) HandleQueryTickets(c *gin.Context) {
	visitorId, ok := getVisitorId(c)
	if !ok {
		// 没有会话就没有票据
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 0,
			Msg:    "查询成功",
			Data:   []byte(`[]`),
		})
		return
	}

	var records []cmn.TSavedTicket
	err := cmn.GormDB.Where("visitor_id = ?", visitorId).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		z.Error("failed to query saved tickets", zap.Error(err), zap.String("visitorId", visitorId.String()))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "查询号码组合失败",
		})
		return
	}

	tickets := make([]SavedTicket, 0, len(records))
	for _, record := range records {
		tickets = append(tickets, toSavedTicket(record))
	}

	ticketsJson, err := json.Marshal(tickets)
	if err != nil {
		z.Error("failed to marshal saved tickets", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "票据序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status:   0,
		Msg:      "查询成功",
		Data:     ticketsJson,
		RowCount: int64(len(tickets)),
	})
}

// HandleDeleteTicket 删除当前访客的一条号码组合
func (h *handler) HandleDeleteTicket(c *gin.Context) {
	visitorId, ok := getVisitorId(c)
	if !ok {
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "访客会话不存在",
		})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		z.Error("invalid ticket id", zap.String("id", c.Param("id")))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "票据ID格式错误",
		})
		return
	}

	// 只能删除属于自己的票据
	result := cmn.GormDB.Where("id = ? AND visitor_id = ?", id, visitorId).Delete(&cmn.TSavedTicket{})
	if result.Error != nil {
		z.Error("failed to delete saved ticket", zap.Error(result.Error), zap.Int64("id", id))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "删除号码组合失败",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "票据不存在",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "删除成功",
	})
}

// toSavedTicket 数据库记录转对外视图
func toSavedTicket(record cmn.TSavedTicket) SavedTicket {
	var numbers []string
	if err := json.Unmarshal(record.Numbers, &numbers); err != nil {
		z.Error("failed to unmarshal ticket numbers", zap.Error(err), zap.Int64("id", record.Id))
	}

	return SavedTicket{
		Id:          record.Id,
		RefCode:     record.RefCode,
		GameType:    record.GameType,
		Numbers:     numbers,
		BonusNumber: record.BonusNumber,
		CreatedAt:   record.CreatedAt,
	}
}

// getVisitorId 从session读取访客ID，不存在则返回false
func getVisitorId(c *gin.Context) (uuid.UUID, bool) {
	session, err := sessionStore.Get(c.Request, visitorSessionKey)
	if err != nil {
		z.Error("failed to get session", zap.Error(err))
		return uuid.Nil, false
	}

	idStr, ok := session.Values["visitor_id"].(string)
	if !ok || idStr == "" {
		return uuid.Nil, false
	}

	visitorId, err := uuid.Parse(idStr)
	if err != nil {
		z.Error("invalid visitor id in session", zap.String("visitorId", idStr))
		return uuid.Nil, false
	}

	return visitorId, true
}

// getOrCreateVisitorId 读取访客ID，首次访问时生成并写入session
func getOrCreateVisitorId(c *gin.Context) (uuid.UUID, error) {
	if visitorId, ok := getVisitorId(c); ok {
		return visitorId, nil
	}

	visitorId := uuid.New()

	session, err := sessionStore.Get(c.Request, visitorSessionKey)
	if err != nil {
		z.Error("failed to get session", zap.Error(err))
		return uuid.Nil, err
	}

	session.Values["visitor_id"] = visitorId.String()
	err = session.Save(c.Request, c.Writer)
	if err != nil {
		z.Error("failed to save session", zap.Error(err))
		return uuid.Nil, err
	}

	return visitorId, nil
}
