package util

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-honey/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/config"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
)

// FailOnError 出现异常时中止
func FailOnError(msg string, err error) {
	if err != nil {
		log.Error("%s: %s", msg, err.Error())
		panic(fmt.Sprintf("%s: %s", msg, err.Error()))
	}
}

// 分页上限
const (
	maxLimit = 100
	maxPage  = 100000
)

// ParsePaging 解析分页参数, 页码从1开始, 每页条数不超过maxLimit
func ParsePaging(p *cmd.Paging) (skip, limit int64, err error) {
	page, size := p.Page, p.Limit
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		return 0, 0, consts.ErrInvalidPaging
	}
	if size <= 0 {
		size = 10
	}
	if size > maxLimit {
		size = maxLimit
	}
	skip = int64(page-1) * int64(size)
	limit = int64(size)
	return skip, limit, nil
}

// AlertEMail 向值班邮箱发送预警邮件
func AlertEMail(c *config.SMTP, subject, content string) (err error) {
	if c.Host == "" || c.Alert == "" {
		return fmt.Errorf("smtp未配置")
	}
	auth := smtp.PlainAuth("", c.Username, c.Password, c.Host)
	err = smtp.SendMail(c.Host+":"+strconv.Itoa(c.Port), auth, c.Username, []string{c.Alert}, []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"From: xh-polaris\r\n"+
			"Content-Type: text/plain"+"; charset=UTF-8\r\n"+
			"Subject: %s\r\n\r\n"+
			"%s\r\n", c.Alert, subject, content)))
	return err
}
