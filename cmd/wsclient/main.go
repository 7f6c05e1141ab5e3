package main

import (
	"bufio"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/xh-polaris/psych-honey/biz/adaptor/middleware"
	"github.com/xh-polaris/psych-honey/biz/application/dto"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
)

// 命令行对话客户端, 用于本地调试
func main() {
	addr := flag.String("addr", "127.0.0.1:8080", "服务地址")
	secret := flag.String("secret", "change-me", "Auth.SecretKey")
	user := flag.String("user", "debug", "用户id")
	lang := flag.String("lang", "hinglish", "开场白语言")
	flag.Parse()

	token, err := middleware.SignToken(*secret, *user, time.Hour)
	if err != nil {
		fail(err)
	}
	u := url.URL{Scheme: "ws", Host: *addr, Path: "/chat/", RawQuery: "token=" + url.QueryEscape(token)}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		fail(err)
	}
	defer conn.Close()

	if err = conn.WriteJSON(&dto.ChatStartReq{Timestamp: time.Now().Unix(), From: "wsclient", Lang: *lang}); err != nil {
		fail(err)
	}

	go func() {
		for {
			var data dto.ChatData
			if err := conn.ReadJSON(&data); err != nil {
				fmt.Println("\n[closed]", err)
				os.Exit(0)
			}
			if data.Analysis != nil {
				fmt.Printf("\n[%s/%s %v]\n", data.Analysis.Emotion, data.Analysis.Level, data.Analysis.Strategies)
			}
			fmt.Print(data.Content)
			if data.Finish != "" {
				fmt.Print("\n> ")
			}
		}
	}()

	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		msg := strings.TrimSpace(in.Text())
		req := &dto.ChatReq{Msg: msg}
		if msg == "/end" {
			req = &dto.ChatReq{Cmd: consts.EndCmd}
		}
		if err = conn.WriteJSON(req); err != nil {
			fail(err)
		}
		if req.Cmd == consts.EndCmd {
			time.Sleep(time.Second)
			return
		}
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
