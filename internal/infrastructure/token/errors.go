package token

import "errors"

var (
	// ErrInvalidToken はトークンの署名やクレームが不正な場合のエラー
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken はトークンの有効期限が切れている場合のエラー
	ErrExpiredToken = errors.New("token expired")

	// ErrWrongTokenType はアクセストークンとリフレッシュトークンを
	// 取り違えて使用した場合のエラー
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrEmptySecret は署名鍵が設定されていない場合のエラー
	ErrEmptySecret = errors.New("jwt secret must not be empty")
)
