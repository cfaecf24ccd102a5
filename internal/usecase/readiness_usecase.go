package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrHealthCheckFailed はヘルスチェックが失敗したことを示すエラー
var ErrHealthCheckFailed = errors.New("health check failed")

// HealthCheckResult は個々のヘルスチェック結果を表す
type HealthCheckResult struct {
	Name    string
	Healthy bool
	Error   error
}

// ReadinessUseCase は依存先 (postgres / redis / s3) のReadinessチェックを実行する
type ReadinessUseCase struct {
	checkers []HealthChecker
}

func NewReadinessUseCase(checkers ...HealthChecker) *ReadinessUseCase {
	return &ReadinessUseCase{checkers: checkers}
}

// Execute はすべてのヘルスチェッカーを実行し、結果の一覧を返す
// 1つでも失敗した場合はErrHealthCheckFailedを含むエラーも返す
func (uc *ReadinessUseCase) Execute(ctx context.Context) ([]HealthCheckResult, error) {
	results := make([]HealthCheckResult, 0, len(uc.checkers))
	var failed []string

	for _, checker := range uc.checkers {
		err := checker.Check(ctx)
		results = append(results, HealthCheckResult{
			Name:    checker.Name(),
			Healthy: err == nil,
			Error:   err,
		})
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", checker.Name(), err))
		}
	}

	if len(failed) > 0 {
		return results, fmt.Errorf("%w: %s", ErrHealthCheckFailed, strings.Join(failed, "; "))
	}
	return results, nil
}
