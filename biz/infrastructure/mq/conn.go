package mq

import (
	"fmt"
	"math"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/config"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/util"
)

// conn 采用单例模式, 复用连接
var (
	conn   *amqp.Connection
	connMu sync.RWMutex
	once   sync.Once
	url    string
)

// getConn 获取连接单例
func getConn() *amqp.Connection {
	once.Do(func() {
		url = config.GetConfig().RabbitMQ.Url
		c, err := amqp.Dial(url)
		util.FailOnError("rabbit mq connect failed", err)
		if err = declare(c); err != nil {
			util.FailOnError("rabbit mq declare failed", err)
		}
		conn = c
		// 自动重连监听
		go monitor(c)
	})
	connMu.RLock()
	defer connMu.RUnlock()
	return conn
}

// declare 声明交换机与队列
func declare(c *amqp.Connection) error {
	ch, err := c.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if err = ch.ExchangeDeclare(consts.HistoryExchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return err
	}
	if _, err = ch.QueueDeclare(consts.HistoryQueue, true, false, false, false, nil); err != nil {
		return err
	}
	if err = ch.QueueBind(consts.HistoryQueue, consts.HistoryRoutingKey, consts.HistoryExchange, false, nil); err != nil {
		return err
	}
	return ch.ExchangeDeclare(consts.AlertExchange, amqp.ExchangeTopic, true, false, false, false, nil)
}

// monitor 监听健康状态并重连
func monitor(c *amqp.Connection) {
	for {
		reason := <-c.NotifyClose(make(chan *amqp.Error, 1))
		log.Info("RabbitMQ connection closed, reason: %v", reason)

		retries := 0
		for {
			time.Sleep(time.Duration(math.Pow(2, float64(retries))) * time.Second)

			newConn, err := amqp.Dial(url)
			if err == nil {
				connMu.Lock()
				conn = newConn
				connMu.Unlock()
				c = newConn
				log.Info("Reconnect to RabbitMQ")
				break
			}
			retries++
			if retries > 5 {
				util.FailOnError("超过最大重连次数5", fmt.Errorf("RabbitMQ 断开连接且重连失败"))
				return
			}
		}
	}
}
