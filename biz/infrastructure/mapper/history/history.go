package history

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type History struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SessionId  string             `bson:"session_id" json:"session_id"`
	UserId     string             `bson:"user_id" json:"user_id"`
	Dialogs    []*Dialog          `bson:"dialogs" json:"dialogs"`
	Report     *Report            `bson:"report" json:"report"`
	StartTime  time.Time          `bson:"start_time" json:"start_time"`
	EndTime    time.Time          `bson:"end_time" json:"end_time"`
	CreateTime time.Time          `bson:"create_time" json:"create_time"`
}

// Dialog 一条对话, 用户消息附带分析摘要
type Dialog struct {
	Role    string   `bson:"role" json:"role"`
	Content string   `bson:"content" json:"content"`
	Emotion string   `bson:"emotion,omitempty" json:"emotion,omitempty"`
	Level   string   `bson:"level,omitempty" json:"level,omitempty"`
	Topics  []string `bson:"topics,omitempty" json:"topics,omitempty"`
}

// Report 对话结束后汇总的报告
type Report struct {
	Emotions    []string `bson:"emotions" json:"emotions"`
	PeakLevel   string   `bson:"peak_level" json:"peak_level"`
	Topics      []string `bson:"topics" json:"topics"`
	Strategies  []string `bson:"strategies" json:"strategies"`
	CrisisTurns int      `bson:"crisis_turns" json:"crisis_turns"`
	Keywords    []string `bson:"keywords" json:"keywords"`
	Content     string   `bson:"content" json:"content"`
	Grade       string   `bson:"grade" json:"grade"`
	Suggestion  []string `bson:"suggestion" json:"suggestion"`
}
