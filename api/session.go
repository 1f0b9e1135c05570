package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gallery/adapters/redis"
	"gallery/adapters/session"
	"gallery/api/openapi"
	"gallery/models"
)

const (
	SESSION_KEY_CUSTOMER    = "customer"
	SESSION_KEY_CUSTOMER_ID = "customer_id"
	SESSION_KEY_ARTIST      = "artist"
	SESSION_KEY_ARTIST_ID   = "artist_id"
	SESSION_KEY_FLASHES     = "_flashes"
)

const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashWarning = "warning"
	FlashDanger  = "danger"
)

var ErrNotLoggedIn = models.NewError(models.ErrUnauthenticated, "Please log in first!")

// Flash 是顯示一次後就移除的提示訊息
type Flash = openapi.Flash

func (impl *ServerImpl) SessionMiddleware() gin.HandlerFunc {
	store := redis.NewStore(
		impl.redisClient,
		redis.WithStorePrefix(impl.config.Redis.KeyPrefix+"session:"),
		redis.WithStoreTTL(impl.config.Session.CookieMaxAge),
	)
	opts := []session.MiddlewareOption{
		session.WithCookieSecure(impl.config.Session.CookieSecure),
		session.WithCookieDomain(impl.config.Session.CookieDomain),
		session.WithLogger(impl.logger),
	}
	if impl.config.Session.CookieSameSite != 0 {
		opts = append(opts, session.WithCookieSameSite(impl.config.Session.CookieSameSite))
	}
	if impl.config.Session.KeyForCookie != "" {
		opts = append(opts, session.WithSessionKeyForCookie(impl.config.Session.KeyForCookie))
	}
	if impl.config.Session.CookieMaxAge > 0 {
		opts = append(opts, session.WithCookieMaxAge(impl.config.Session.CookieMaxAge))
	}
	return session.GinMiddleware(store, opts...)
}

// AccessGuard 依照路由宣告的 security scheme 檢查登入身分
func (impl *ServerImpl) AccessGuard(c *gin.Context) {
	if _, ok := c.Get(openapi.ArtistSessionScopes); ok {
		impl.RequireArtist()(c)
		return
	}
	if _, ok := c.Get(openapi.CustomerSessionScopes); ok {
		impl.RequireCustomer()(c)
	}
}

func (impl *ServerImpl) RequireCustomer() gin.HandlerFunc {
	return impl.requireRole(SESSION_KEY_CUSTOMER_ID, "/customer_login")
}

func (impl *ServerImpl) RequireArtist() gin.HandlerFunc {
	return impl.requireRole(SESSION_KEY_ARTIST_ID, "/artist_login")
}

// requireRole 檢查 session 中是否有指定身分，沒有則轉址到登入頁並中止請求
func (impl *ServerImpl) requireRole(idKey, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const op = "requireRole"
		sess, err := session.GetSession(c)
		if err != nil {
			impl.internalError(c, op, err)
			return
		}
		if _, err := sessionID(sess, idKey); err != nil {
			addFlash(sess, FlashWarning, ErrNotLoggedIn.Message)
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
		}
	}
}

// CurrentCustomerID 取得目前登入的買家編號
func CurrentCustomerID(c *gin.Context) (uint, error) {
	return currentID(c, SESSION_KEY_CUSTOMER_ID)
}

// CurrentArtistID 取得目前登入的藝術家帳號編號
func CurrentArtistID(c *gin.Context) (uint, error) {
	return currentID(c, SESSION_KEY_ARTIST_ID)
}

func currentID(c *gin.Context, key string) (uint, error) {
	sess, err := session.GetSession(c)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return 0, ErrNotLoggedIn
		}
		return 0, err
	}
	return sessionID(sess, key)
}

func sessionID(sess session.ISession, key string) (uint, error) {
	id, err := strconv.ParseUint(sess.Get(key), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrNotLoggedIn
	}
	return uint(id), nil
}

// addFlash 在 session 中加入一則提示訊息
func addFlash(sess session.ISession, category, message string) {
	flashes := readFlashes(sess)
	flashes = append(flashes, Flash{Category: category, Message: message})
	encoded, err := json.Marshal(flashes)
	if err != nil {
		slog.Error("Fail to encode flashes", slog.Any("error", err))
		return
	}
	sess.Set(SESSION_KEY_FLASHES, string(encoded))
}

// popFlashes 取出並移除 session 中所有的提示訊息
func popFlashes(sess session.ISession) []Flash {
	flashes := readFlashes(sess)
	sess.Delete(SESSION_KEY_FLASHES)
	return flashes
}

func readFlashes(sess session.ISession) []Flash {
	raw := sess.Get(SESSION_KEY_FLASHES)
	if raw == "" {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal([]byte(raw), &flashes); err != nil {
		slog.Warn("Drop malformed flashes", slog.Any("error", err))
		return nil
	}
	return flashes
}

// flash 在目前請求的 session 中加入提示訊息
func (impl *ServerImpl) flash(c *gin.Context, category, message string) {
	sess, err := session.GetSession(c)
	if err != nil {
		impl.logger.Error("Fail to get session for flash", slog.Any("error", err))
		return
	}
	addFlash(sess, category, message)
}

// viewResponse 是頁面類請求的回應格式
type viewResponse struct {
	Flashes []Flash `json:"flashes"`
	User    string  `json:"user,omitempty"`
	Data    any     `json:"data,omitempty"`
}

// render 回傳頁面資料並取出待顯示的提示訊息
func (impl *ServerImpl) render(c *gin.Context, userKey string, data any) {
	const op = "render"
	sess, err := session.GetSession(c)
	if err != nil {
		impl.internalError(c, op, err)
		return
	}
	response := viewResponse{
		Flashes: popFlashes(sess),
		Data:    data,
	}
	if response.Flashes == nil {
		response.Flashes = []Flash{}
	}
	if userKey != "" {
		response.User = sess.Get(userKey)
	}
	c.JSON(http.StatusOK, response)
}

// fail 將錯誤轉為提示訊息並轉址回表單頁
func (impl *ServerImpl) fail(c *gin.Context, op string, err error, redirectTo string) {
	message, ok := models.UserMessage(err)
	category := FlashDanger
	switch {
	case !ok:
		impl.logger.Error("Request failed", slog.String("op", op), slog.Any("error", err))
		c.Error(err)
		message = "Something went wrong, please try again."
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrUnauthenticated):
		category = FlashWarning
	}
	impl.flash(c, category, message)
	c.Redirect(http.StatusSeeOther, redirectTo)
}

// succeed 加入成功訊息並轉址
func (impl *ServerImpl) succeed(c *gin.Context, message, redirectTo string) {
	impl.flash(c, FlashSuccess, message)
	c.Redirect(http.StatusSeeOther, redirectTo)
}
