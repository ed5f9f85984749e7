// File: internal/audit/audit.go
package audit

import (
	"context"
	"time"

	"annotate-me/internal/credentials"
	"annotate-me/internal/database"
	"annotate-me/internal/model"
	"annotate-me/internal/store"
	"annotate-me/internal/worker"

	"go.uber.org/zap"
)

// Recorder 記錄登入送出的驗證結果
type Recorder interface {
	Record(a model.LoginAttempt)
}

// NewAttempt 由驗證結果組出紀錄，只保留分類與錯誤訊息
func NewAttempt(source, identifier string, r credentials.Result, remoteIP string) model.LoginAttempt {
	return model.LoginAttempt{
		Source:          source,
		IdentifierKind:  credentials.ClassifyIdentifier(identifier).String(),
		Accepted:        r.Valid(),
		IdentifierError: r.Identifier,
		SecretError:     r.Secret,
		RemoteIP:        remoteIP,
	}
}

// Nop 不做任何紀錄，未設定資料庫時使用
type Nop struct{}

func (Nop) Record(model.LoginAttempt) {}

var insertAttempt = store.InsertAttempt

// DBRecorder 透過 worker pool 非同步寫入資料庫
type DBRecorder struct {
	db      database.DB
	pool    worker.Pool
	log     *zap.Logger
	timeout time.Duration
}

// NewDBRecorder timeout 為每筆寫入的上限
func NewDBRecorder(db database.DB, pool worker.Pool, log *zap.Logger, timeout time.Duration) *DBRecorder {
	return &DBRecorder{db: db, pool: pool, log: log, timeout: timeout}
}

// Record 不會阻塞呼叫端，佇列滿時直接丟棄
func (r *DBRecorder) Record(a model.LoginAttempt) {
	ok := r.pool.TrySubmit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if _, err := insertAttempt(ctx, r.db, &a); err != nil {
			r.log.Warn("failed to record login attempt", zap.String("source", a.Source), zap.Error(err))
		}
	})
	if !ok {
		r.log.Warn("login attempt dropped", zap.String("source", a.Source))
	}
}
