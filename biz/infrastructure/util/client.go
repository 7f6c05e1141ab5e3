package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/xh-polaris/gopkg/util/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	client     *HttpClient
	clientOnce sync.Once
)

// HttpClient 是一个简单的 HTTP 客户端, 请求会携带链路信息
type HttpClient struct {
	Client *http.Client
}

// NewHttpClient 创建一个新的 HttpClient 实例
func NewHttpClient() *HttpClient {
	return &HttpClient{
		Client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   10 * time.Second,
		},
	}
}

// GetHttpClient 获取客户端单例
func GetHttpClient() *HttpClient {
	clientOnce.Do(func() {
		client = NewHttpClient()
	})
	return client
}

// Req 发送 HTTP 请求, 响应体为空时返回nil
func (c *HttpClient) Req(ctx context.Context, method, url string, headers http.Header, body any) (map[string]any, error) {
	resp, err := c.do(ctx, method, url, headers, body)
	if err != nil {
		return nil, fmt.Errorf("发送请求失败: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error("关闭请求失败: %v", closeErr)
		}
	}()

	_resp, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	// 检查响应状态码
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d, response body: %s", resp.StatusCode, _resp)
	}
	if len(bytes.TrimSpace(_resp)) == 0 {
		return nil, nil
	}

	// 反序列化响应体
	var respMap map[string]any
	if err = json.Unmarshal(_resp, &respMap); err != nil {
		return nil, fmt.Errorf("反序列化响应失败: %w", err)
	}
	return respMap, nil
}

// do 实际执行请求
func (c *HttpClient) do(ctx context.Context, method, url string, headers http.Header, body any) (*http.Response, error) {
	// 将 body 序列化为 JSON
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("请求体序列化失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	return c.Client.Do(req)
}
