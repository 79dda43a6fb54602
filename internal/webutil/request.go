// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go_4_streak_keep/internal/model"

	"github.com/go-playground/validator/v10"
)

// DecodeJSONBody はリクエストボディをデコードし、validateタグで検証します。
// ボディが空の場合は dst をゼロ値のままにします (count省略のデフォルト1に対応)。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		// ボディ無しはゼロ値として検証に委ねる (countが必須の型ならそこで弾かれる)
		return ValidateStruct(dst)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			// 空ボディは許容し、バリデーションに委ねる
			return ValidateStruct(dst)
		}
		return model.NewAppError("INVALID_ARGUMENT", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
	}

	return ValidateStruct(dst)
}

// ValidateStruct は共有バリデータで構造体を検証し、
// 失敗時はフィールド情報付きの AppError を返します。
func ValidateStruct(dst interface{}) error {
	if err := Validator.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return NewValidationErrorResponse(validationErrs)
		}
		return model.NewAppError("INVALID_ARGUMENT", "入力値の検証に失敗しました。", "", model.ErrInvalidInput)
	}
	return nil
}
