package lotto

// DrawResult 一期开奖结果
type DrawResult struct {
	Id             string   `json:"id"`   // 玩法标识 mega/power/lotto
	Name           string   `json:"name"` // 展示名
	DrawId         string   `json:"drawId"`
	DrawDate       string   `json:"drawDate"` // 开奖日期，如 21/01/2026
	Jackpot        string   `json:"jackpot"`  // 奖池金额展示串
	WinningNumbers []string `json:"winningNumbers"`
	BonusNumber    string   `json:"bonusNumber,omitempty"` // 特别号码（power/lotto）
	NextDrawTime   string   `json:"nextDrawTime"`          // 下期开奖时间，ISO 格式
}

// SavedTicket 访客保存的号码组合（对外视图）
type SavedTicket struct {
	Id          int64    `json:"id"`
	RefCode     string   `json:"refCode"`
	GameType    string   `json:"gameType"`
	Numbers     []string `json:"numbers"`
	BonusNumber string   `json:"bonusNumber,omitempty"`
	CreatedAt   int64    `json:"createdAt"`
}

// Recommendation 智能推荐结果
type Recommendation struct {
	GameType    string   `json:"gameType"`
	Numbers     []string `json:"numbers"`
	BonusNumber string   `json:"bonusNumber,omitempty"`
}
