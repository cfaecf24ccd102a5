package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrEmptyUserID      = errors.New("user id cannot be empty")
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidUsername  = errors.New("invalid username")
	ErrInvalidSlug      = errors.New("invalid slug")
	ErrEmptyPoolName    = errors.New("pool name cannot be empty")
	ErrInvalidRating    = errors.New("rating value must be between 1 and 5")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrEmptyFileName    = errors.New("file name cannot be empty")

	// ErrBookingExists は同一ユーザー・同一プールの予約が既に存在する場合のエラー
	// DBのユニーク制約違反から変換される
	ErrBookingExists = errors.New("booking already exists for this user and pool")

	// ErrRatingExists は同一ユーザー・同一プールの評価が既に存在する場合のエラー
	ErrRatingExists = errors.New("rating already exists for this user and pool")

	// ErrPoolExists はスラッグが重複するプールが既に存在する場合のエラー
	ErrPoolExists = errors.New("pool with this slug already exists")

	// ErrEmailTaken は登録済みのメールアドレスが指定された場合のエラー
	ErrEmailTaken = errors.New("email address is already registered")

	// ErrUsernameTaken は登録済みのユーザー名が指定された場合のエラー
	ErrUsernameTaken = errors.New("username is already taken")
)
