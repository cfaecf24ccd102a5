//go:build e2e

// Package e2e はE2Eテストで使用するヘルパー関数を提供します
package e2e

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
)

var (
	// setupOnce はE2E環境セットアップを一度だけ実行するためのSync.Once
	setupOnce sync.Once
	setupErr  error

	// testPools はE2Eテスト用にDBへ登録するプール一覧
	testPools = []struct {
		slug string
		name string
	}{
		{slug: "olympic-pool", name: "Olympic Pool"},
		{slug: "kiddie-pool", name: "Kiddie Pool"},
	}
)

// TestMain はE2Eテストパッケージ全体の初期化を行います
func TestMain(m *testing.M) {
	if err := SetupE2EEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "E2Eテスト環境のセットアップに失敗しました: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// SetupE2EEnvironment はE2Eテスト環境をセットアップします
// sync.Onceにより、複数回呼び出されても実際のセットアップは一度だけ実行されます
func SetupE2EEnvironment() error {
	setupOnce.Do(func() {
		setupErr = doSetupE2EEnvironment()
	})
	return setupErr
}

// doSetupE2EEnvironment は実際のセットアップ処理を行います
func doSetupE2EEnvironment() error {
	if err := WaitForService(GetBaseEndpoint()+"/healthz", 60*time.Second); err != nil {
		return err
	}

	if err := registerTestPools(); err != nil {
		return fmt.Errorf("テスト用プールの登録に失敗しました: %w", err)
	}

	return nil
}

// registerTestPools はテスト用プールをDBに登録します
// プールの作成は管理者限定のため、APIを経由せず直接投入します
func registerTestPools() error {
	dbHost := getEnvOrDefault("DATABASE_HOST", "localhost")
	dbPort := getEnvOrDefault("DATABASE_PORT", "5432")
	dbUser := getEnvOrDefault("DATABASE_USER", "poolbook")
	dbPassword := getEnvOrDefault("DATABASE_PASSWORD", "poolbook_dev_password")
	dbName := getEnvOrDefault("DATABASE_DBNAME", "poolbook")

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("データベース接続に失敗しました: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("データベースへの接続確認に失敗しました: %w", err)
	}

	adminID := "00000000-0000-0000-0000-000000000001"
	_, err = db.Exec(
		`INSERT INTO users (id, email, username, password_hash, is_admin, created_at)
		 VALUES ($1, 'admin@poolbook.local', 'poolbook-admin', 'e2e-seed-no-login', TRUE, NOW())
		 ON CONFLICT (id) DO NOTHING`,
		adminID,
	)
	if err != nil {
		return fmt.Errorf("管理者ユーザーの登録に失敗しました: %w", err)
	}

	for _, p := range testPools {
		_, err := db.Exec(
			`INSERT INTO pools (slug, name, created_by, created_at, updated_at)
			 VALUES ($1, $2, $3, NOW(), NOW())
			 ON CONFLICT (slug) DO NOTHING`,
			p.slug, p.name, adminID,
		)
		if err != nil {
			return fmt.Errorf("プール %s の登録に失敗しました: %w", p.slug, err)
		}
	}

	return nil
}

// getEnvOrDefault は環境変数を取得し、存在しない場合はデフォルト値を返します
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetBaseEndpoint はE2Eテスト対象のベースエンドポイントを返します
// 環境変数 E2E_TEST_ENDPOINT が設定されている場合はその値を使用し、
// 設定されていない場合は http://localhost:8080 をデフォルトとして返します
func GetBaseEndpoint() string {
	return getEnvOrDefault("E2E_TEST_ENDPOINT", "http://localhost:8080")
}

// WaitForService は指定されたURLのサービスが利用可能になるまで待機します
func WaitForService(url string, timeout time.Duration) error {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	deadline := time.Now().Add(timeout)

	checkService := func() bool {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode < 500 {
				return true
			}
		}
		return false
	}

	if checkService() {
		return nil
	}

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		if time.Now().After(deadline) {
			return fmt.Errorf("サービスの起動を待機中にタイムアウトしました: %s", url)
		}

		<-ticker.C
		if checkService() {
			return nil
		}
	}
}

// postJSON はJSONボディ付きのPOSTを送り、ステータスとデコード済みボディを返します
func postJSON(t *testing.T, url, accessToken string, payload any) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("リクエストボディのエンコードに失敗: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("リクエストの作成に失敗: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("リクエストの送信に失敗: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("レスポンスボディの読み込みに失敗: %v", err)
	}

	var decoded map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("レスポンスボディのデコードに失敗: %v (body=%s)", err, raw)
		}
	}

	return resp.StatusCode, decoded
}

// registerUser は新規ユーザーを登録し、アクセストークンを返します
func registerUser(t *testing.T, email, username, password string) string {
	t.Helper()

	status, body := postJSON(t, GetBaseEndpoint()+"/register", "", map[string]string{
		"email":    email,
		"username": username,
		"password": password,
	})
	if status != http.StatusCreated {
		t.Fatalf("ユーザー登録に失敗: status=%d body=%v", status, body)
	}

	access, ok := body["access"].(string)
	if !ok || access == "" {
		t.Fatalf("登録レスポンスにアクセストークンが含まれていません: %v", body)
	}
	return access
}
