package consts

// 数据库相关
const (
	ID         = "_id"
	UserId     = "user_id"
	CreateTime = "create_time"
	StartTime  = "start_time"
)

// Post http
const (
	Post = "POST"
)

// 默认值
const (
	EndCmd = -1
	Ping   = 1
)

// 对话角色
const (
	RoleSystem = "system"
	RoleUser   = "user"
	RoleAi     = "ai"
)

// ReportRounds 超过该轮数的对话才生成报告
const ReportRounds = 3

// 消息队列
const (
	HistoryExchange   = "chat_history_honey"
	HistoryQueue      = "chat_history_honey"
	HistoryRoutingKey = "history.honey.end"
	AlertExchange     = "alert"
	AlertRoutingKey   = "alert.crisis"
)

// UserIdKey 鉴权后写入请求上下文的用户id
const UserIdKey = "userId"
