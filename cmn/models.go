package cmn

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TSavedTicketName   = "t_saved_ticket"    // 用户保存的号码组合表
	TDreamLogName      = "t_dream_log"       // 解梦查询日志表
	TFateReportLogName = "t_fate_report_log" // 八字分析报告日志表
)

// TSavedTicket 访客保存的号码组合表
// 访客通过匿名会话标识，不关联账号体系
type TSavedTicket struct {
	Id          int64          `gorm:"column:id;type:bigint;primaryKey;autoIncrement"`     // ID
	VisitorId   uuid.UUID      `gorm:"column:visitor_id;type:uuid;not null;index"`         // 匿名访客ID
	RefCode     string         `gorm:"column:ref_code;type:varchar(10);not null"`          // 票据参考码
	GameType    string         `gorm:"column:game_type;type:varchar(10);not null;index"`   // 游戏类型 mega/power/lotto
	Numbers     datatypes.JSON `gorm:"column:numbers;type:jsonb;not null"`                 // 号码组合
	BonusNumber string         `gorm:"column:bonus_number;type:varchar(2)"`                // 特别号码（power）
	CreatedAt   int64          `gorm:"column:created_at;type:bigint;autoCreateTime:milli"` // 创建时间
	UpdatedAt   int64          `gorm:"column:updated_at;type:bigint;autoUpdateTime:milli"` // 更新时间
}

func (TSavedTicket) TableName() string {
	return TSavedTicketName
}

// TDreamLog 解梦查询日志表
type TDreamLog struct {
	Id        int64          `gorm:"column:id;type:bigint;primaryKey;autoIncrement"`     // ID
	Keyword   string         `gorm:"column:keyword;type:varchar(100);not null;index"`    // 查询关键词
	Lang      string         `gorm:"column:lang;type:varchar(2);not null"`               // 语言 vn/en/kr
	Omen      string         `gorm:"column:omen;type:varchar(4);not null"`               // 吉凶 Good/Bad
	Numbers   datatypes.JSON `gorm:"column:numbers;type:jsonb"`                          // 推荐号码
	CreatedAt int64          `gorm:"column:created_at;type:bigint;autoCreateTime:milli"` // 创建时间
	UpdatedAt int64          `gorm:"column:updated_at;type:bigint;autoUpdateTime:milli"` // 更新时间
}

func (TDreamLog) TableName() string {
	return TDreamLogName
}

// TFateReportLog 八字分析报告日志表
type TFateReportLog struct {
	Id              int64          `gorm:"column:id;type:bigint;primaryKey;autoIncrement"`     // ID
	Name            string         `gorm:"column:name;type:varchar(50);not null"`              // 姓名
	Topic           string         `gorm:"column:topic;type:varchar(20);not null;index"`       // 分析主题
	Lang            string         `gorm:"column:lang;type:varchar(2);not null"`               // 语言 vn/en/kr
	DominantElement string         `gorm:"column:dominant_element;type:varchar(10)"`           // 旺相五行
	WeakElement     string         `gorm:"column:weak_element;type:varchar(10)"`               // 衰弱五行
	LuckyNumbers    datatypes.JSON `gorm:"column:lucky_numbers;type:jsonb"`                    // 幸运号码
	CreatedAt       int64          `gorm:"column:created_at;type:bigint;autoCreateTime:milli"` // 创建时间
	UpdatedAt       int64          `gorm:"column:updated_at;type:bigint;autoUpdateTime:milli"` // 更新时间
}

func (TFateReportLog) TableName() string {
	return TFateReportLogName
}
