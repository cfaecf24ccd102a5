package s3

import "errors"

// ErrObjectNotFound は指定キーのオブジェクトが存在しない場合のエラー
var ErrObjectNotFound = errors.New("object not found")
