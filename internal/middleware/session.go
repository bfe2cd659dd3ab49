package middleware

import (
	"context"
	"net/http"
	"time"

	"go_study_sheet/internal/model"

	"github.com/google/uuid"
)

type sessionCtxKey struct{}

// SessionMiddleware はセッションCookieを読み取り、なければ新しいIDを払い出します。
// セッションの中身は service 層が session.Store から取得する。
func SessionMiddleware(cookieName string, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if c, err := r.Cookie(cookieName); err == nil {
				if _, parseErr := uuid.Parse(c.Value); parseErr == nil {
					sessionID = c.Value
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
				GetLogger(r.Context()).Debug("New study session issued", "session_id", sessionID)
			}

			// 操作のたびに有効期限を延ばす
			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, sessionID)
			ctx = WithLogger(ctx, GetLogger(ctx).With("session_id", sessionID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithSessionID はテストやバッチ用にセッションIDをコンテキストへ設定します
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, sessionID)
}

func GetSessionIDFromContext(ctx context.Context) (string, error) {
	value, ok := ctx.Value(sessionCtxKey{}).(string)
	if !ok || value == "" {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "セッション情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}
