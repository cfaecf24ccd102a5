package usecase

import "errors"

var (
	// ErrAuthenticationRequired は未認証の呼び出しが拒否された場合のエラー
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrForbidden は認証済みだが権限のない呼び出しが拒否された場合のエラー
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials はログイン時の認証情報が一致しない場合のエラー
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRefreshToken はリフレッシュトークンが無効・失効済み・再利用の場合のエラー
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrPoolNotFound は対象のプールが存在しない場合のエラー
	ErrPoolNotFound = errors.New("pool not found")
)
