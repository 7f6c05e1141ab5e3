package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	hertz "github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/golang-jwt/jwt/v4"
	"github.com/xh-polaris/gopkg/util/log"
	"github.com/xh-polaris/psych-honey/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/config"
	"github.com/xh-polaris/psych-honey/biz/infrastructure/consts"
)

const (
	bearerPrefix = "Bearer "
	// tokenQuery 浏览器建立websocket时无法设置请求头, 通过query传递
	tokenQuery = "token"
)

var errNoUserId = errors.New("token中缺少userId")

// JWTAuth 校验访问令牌并将用户id写入请求上下文
// 配置了PublicKey时使用ES256, 否则使用SecretKey做HMAC校验
func JWTAuth(c *config.Auth) app.HandlerFunc {
	keyFunc := newKeyFunc(c)
	return func(ctx context.Context, rc *app.RequestContext) {
		token := tokenOf(rc)
		if token == "" {
			abort(rc)
			return
		}
		userId, err := parse(token, keyFunc)
		if err != nil {
			log.CtxInfo(ctx, "[auth] invalid token, path=%s, err=%v", rc.Path(), err)
			abort(rc)
			return
		}
		rc.Set(consts.UserIdKey, userId)
		rc.Next(ctx)
	}
}

// UserId 获取鉴权后写入的用户id
func UserId(rc *app.RequestContext) string {
	return rc.GetString(consts.UserIdKey)
}

// SignToken 签发HMAC令牌, 用于测试和调试客户端
func SignToken(secret, userId string, expire time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userId,
		"iat":    now.Unix(),
		"exp":    now.Add(expire).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func newKeyFunc(c *config.Auth) jwt.Keyfunc {
	if c.PublicKey != "" {
		key, err := jwt.ParseECPublicKeyFromPEM([]byte(c.PublicKey))
		if err != nil {
			log.Error("parse public key err: %v", err)
		} else {
			return func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodECDSA); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return key, nil
			}
		}
	}
	secret := []byte(c.SecretKey)
	return func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}
}

func parse(token string, keyFunc jwt.Keyfunc) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(token, claims, keyFunc)
	if err != nil {
		return "", err
	}
	if !t.Valid {
		return "", jwt.ErrSignatureInvalid
	}
	userId, _ := claims["userId"].(string)
	if userId == "" {
		userId, _ = claims["sub"].(string)
	}
	if userId == "" {
		return "", errNoUserId
	}
	return userId, nil
}

func tokenOf(rc *app.RequestContext) string {
	if h := string(rc.GetHeader("Authorization")); h != "" {
		return strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
	}
	return rc.Query(tokenQuery)
}

func abort(rc *app.RequestContext) {
	rc.AbortWithStatusJSON(hertz.StatusUnauthorized, &cmd.Response{
		Code: hertz.StatusUnauthorized,
		Msg:  consts.ErrInvalidUser.Error(),
	})
}
