package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gallery/adapters/database"
	redisAdapter "gallery/adapters/redis"
	"gallery/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	impl   *ServerImpl
	db     *gorm.DB
	redis  *miniredis.Miniredis
	server *httptest.Server
}

func setupTest(t *testing.T, images ImageUploader, configure ...func(*ServerConfig)) *testServer {
	config := ServerConfig{
		DB: database.Config{
			Driver: database.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "api.db"),
		},
		Redis: RedisConfig{
			KeyPrefix:      "gallery:",
			StreamKeys:     RedisStreamKeys{Activity: "activity"},
			ActivityMaxLen: 1000,
		},
		Session: SessionConfig{
			KeyForCookie: "gallery_session",
			CookieMaxAge: 20 * time.Minute,
			CookieSecure: false,
		},
		Auth: AuthConfig{BcryptCost: bcrypt.MinCost},
	}
	for _, fn := range configure {
		fn(&config)
	}

	db, err := database.Open(config.DB)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	mr := miniredis.RunT(t)
	config.Redis.Addr = mr.Addr()
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	impl, err := newServer(db, redisClient, images, config, logger)
	require.NoError(t, err)

	server := httptest.NewServer(impl.Router())
	t.Cleanup(func() {
		server.Close()
		impl.Close()
	})
	return &testServer{impl: impl, db: db, redis: mr, server: server}
}

// newClient 建立保存 cookie 且不自動跟隨轉址的客戶端
func (ts *testServer) newClient(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// postForm 送出表單並回傳狀態碼與轉址位置
func (ts *testServer) postForm(t *testing.T, client *http.Client, path string, form url.Values) (int, string) {
	resp, err := client.PostForm(ts.server.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, resp.Header.Get("Location")
}

type testView struct {
	Flashes []Flash        `json:"flashes"`
	User    string         `json:"user"`
	Data    map[string]any `json:"data"`
}

// get 取得頁面，狀態碼為 200 時解析回應內容
func (ts *testServer) get(t *testing.T, client *http.Client, path string) (int, string, testView) {
	resp, err := client.Get(ts.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	var view testView
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	}
	return resp.StatusCode, resp.Header.Get("Location"), view
}

func (ts *testServer) sessionID(t *testing.T, client *http.Client) string {
	u, err := url.Parse(ts.server.URL)
	require.NoError(t, err)
	for _, cookie := range client.Jar.Cookies(u) {
		if cookie.Name == "gallery_session" {
			return cookie.Value
		}
	}
	require.FailNow(t, "session cookie not found")
	return ""
}

func (ts *testServer) registerCustomer(t *testing.T, fullName, username, password string) models.Customer {
	customer, err := ts.impl.accounts.RegisterCustomer(context.Background(), fullName, username, password)
	require.NoError(t, err)
	return customer
}

func (ts *testServer) loginCustomer(t *testing.T, username, password string) *http.Client {
	client := ts.newClient(t)
	status, location := ts.postForm(t, client, "/customer_login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusSeeOther, status)
	require.Equal(t, "/customer_home", location)
	return client
}

func (ts *testServer) loginArtist(t *testing.T, username, password string) *http.Client {
	_, err := ts.impl.accounts.RegisterArtist(context.Background(), "Artist "+username, username, password)
	require.NoError(t, err)
	client := ts.newClient(t)
	status, location := ts.postForm(t, client, "/artist_login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusSeeOther, status)
	require.Equal(t, "/artist_home", location)
	return client
}

func (ts *testServer) seedArtwork(t *testing.T, title string) models.Artwork {
	artist := models.Artist{Name: "Georgia O'Keeffe", Style: "Modernism"}
	require.NoError(t, ts.db.Create(&artist).Error)
	stock := models.Stock{AvailableCount: 1}
	require.NoError(t, ts.db.Create(&stock).Error)
	artwork := models.Artwork{
		Title:    title,
		Type:     "Painting",
		Year:     1932,
		ArtistID: artist.ID,
		StockID:  stock.ID,
		Status:   models.ArtworkAvailable,
	}
	require.NoError(t, ts.db.Create(&artwork).Error)
	return artwork
}

func (ts *testServer) seedAuction(t *testing.T, artworkID uint, status models.AuctionStatus, startPrice int64) models.Auction {
	auction := models.Auction{
		ArtworkID:  artworkID,
		Status:     status,
		StartPrice: decimal.NewFromInt(startPrice),
	}
	require.NoError(t, ts.db.Create(&auction).Error)
	return auction
}

func (ts *testServer) activities(t *testing.T) []ActivityEvent {
	messages, err := ts.impl.redisClient.XRange(context.Background(), "gallery:activity", "-", "+").Result()
	require.NoError(t, err)
	events := make([]ActivityEvent, 0, len(messages))
	for _, message := range messages {
		event, err := redisAdapter.DefaultParseFromMessage[ActivityEvent](message.Values)
		require.NoError(t, err)
		events = append(events, event)
	}
	return events
}

func flashMessages(view testView) []string {
	messages := make([]string, 0, len(view.Flashes))
	for _, flash := range view.Flashes {
		messages = append(messages, flash.Category+": "+flash.Message)
	}
	return messages
}
