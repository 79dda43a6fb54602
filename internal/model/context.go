// internal/model/context.go
package model

// ContextKey はコンテキスト格納用のキー型です。
type ContextKey string

const (
	// TenantIDKey は認証ミドルウェアが設定するテナントID (uuid.UUID) のキーです。
	TenantIDKey ContextKey = "tenantID"
)
