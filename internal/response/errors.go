package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrCategoryRequired ErrCode = "CATEGORY_REQUIRED"

	// ─── Upstream ──────────────────────────────────────────────────────
	ErrQuestionsFetch  ErrCode = "QUESTIONS_FETCH_FAILED"
	ErrCategoriesFetch ErrCode = "CATEGORIES_FETCH_FAILED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrCategoryRequired:
		return "カテゴリ（シート名）を指定してください"
	case ErrQuestionsFetch:
		return "データの取得に失敗しました。鍵の設定などを確認してください。"
	case ErrCategoriesFetch:
		return "メニューの取得に失敗しました。"
	case ErrRateLimitExceeded:
		return "リクエストが多すぎます。しばらくしてから再度お試しください。"
	case ErrNotFound:
		return "リソースが見つかりません。"
	case ErrInternal:
		return "サーバー内部でエラーが発生しました。"
	default:
		return "予期しないエラーが発生しました。"
	}
}
