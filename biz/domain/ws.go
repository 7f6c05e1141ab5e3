package domain

import (
	"sync"
	"time"

	"github.com/hertz-contrib/websocket"
	"github.com/xh-polaris/psych-honey/biz/application/dto"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
)

// idleTimeout 长时间没有消息时断开连接
const idleTimeout = 10 * time.Minute

// WsHelper 是封装Websocket协议的工具类
// 单协程读, 写入需要加锁, 流式回复与心跳可能并发写
type WsHelper struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func NewWsHelper(conn *websocket.Conn) *WsHelper {
	return &WsHelper{conn: conn}
}

// ReadJSON 从流中获取一个Json对象, 需要传入指针, 超时未读到消息时返回错误
func (ws *WsHelper) ReadJSON(obj any) error {
	if err := ws.conn.SetReadDeadline(time.Now().Add(idleTimeout)); err != nil {
		return err
	}
	return ws.conn.ReadJSON(obj)
}

// Error 写入一个错误信息
func (ws *WsHelper) Error(errno *consts.Errno) error {
	return ws.WriteJSON(&dto.Response{
		Code: errno.Code(),
		Msg:  errno.Error(),
	})
}

// WriteJSON 写入一个Json对象
func (ws *WsHelper) WriteJSON(obj any) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.conn.WriteJSON(obj)
}

// Pong 响应心跳
func (ws *WsHelper) Pong() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.conn.WriteMessage(websocket.TextMessage, []byte(`{"cmd":1}`))
}

// Close 关闭连接
func (ws *WsHelper) Close() error {
	return ws.conn.Close()
}
