package router

import (
	"VinaLuck/serve/dream"
	"VinaLuck/serve/fate"
	"VinaLuck/serve/fortune"
	"VinaLuck/serve/lotto"
	"VinaLuck/serve/market"

	"github.com/gin-gonic/gin"
)

// InitRoutes 初始化路由
func InitRoutes(r *gin.Engine) {

	dreamHandler := dream.NewHandler()
	fortuneHandler := fortune.NewHandler()
	fateHandler := fate.NewHandler()
	lottoHandler := lotto.NewHandler()
	marketHandler := market.NewHandler()

	// 路由组 /api
	api := r.Group("/api")
	{
		api.GET("/zodiac", fortuneHandler.HandleQueryZodiac) // 按出生年份查生肖

		api.POST("/dream/interpret", dreamHandler.HandleInterpret)  // 解梦
		api.GET("/dream/numbers", dreamHandler.HandleQueryNumbers)  // 梦境号码池

		api.GET("/fortune/daily", fortuneHandler.HandleDaily) // 每日运势

		api.POST("/fate/analyze", fateHandler.HandleAnalyze) // 八字分析

		api.POST("/lotto/recommend", lottoHandler.HandleRecommend)     // 智能推荐
		api.GET("/lotto/results", lottoHandler.HandleQueryResults)     // 开奖结果
		api.POST("/lotto/ticket", lottoHandler.HandleSaveTicket)       // 保存号码组合
		api.GET("/lotto/tickets", lottoHandler.HandleQueryTickets)     // 查询保存的号码组合
		api.DELETE("/lotto/ticket/:id", lottoHandler.HandleDeleteTicket) // 删除号码组合

		api.GET("/market/rates", marketHandler.HandleQueryRates) // 行情
	}
}
