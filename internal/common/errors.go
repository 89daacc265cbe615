package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound = errors.New("resource not found")

	// Auth errors. Messages are the exact strings shown to the operator;
	// unknown login and wrong password share one message on purpose so the
	// login form cannot be used to enumerate accounts.
	ErrProjectRequired    = errors.New("案件を選択してください。")
	ErrLoginIDRequired    = errors.New("ログインIDを入力してください。")
	ErrPasswordRequired   = errors.New("パスワードを入力してください。")
	ErrProjectNotFound    = errors.New("選択された案件が見つかりません。")
	ErrProjectInactive    = errors.New("選択された案件は現在無効です。")
	ErrInvalidCredentials = errors.New("ログインIDまたはパスワードが正しくありません。")
	ErrOperatorInactive   = errors.New("このアカウントは無効化されています。")

	// Validation errors
	ErrInquiryContentRequired = errors.New("問合せ内容を入力してください。")
	ErrSessionInvalid         = errors.New("セッション情報が不正です。再ログインしてください。")
)
