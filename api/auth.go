package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gallery/accounts"
	"gallery/adapters/session"
)

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type registerForm struct {
	FullName string `form:"fullname" binding:"required"`
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

const msgMissingFields = "Please fill in all required fields."

func (impl *ServerImpl) ArtistLoginPage(c *gin.Context) {
	impl.render(c, "", nil)
}

func (impl *ServerImpl) CustomerLoginPage(c *gin.Context) {
	impl.render(c, "", nil)
}

func (impl *ServerImpl) ArtistRegisterPage(c *gin.Context) {
	impl.render(c, "", nil)
}

func (impl *ServerImpl) CustomerRegisterPage(c *gin.Context) {
	impl.render(c, "", nil)
}

// ArtistLogin 驗證藝術家帳號並寫入 session
func (impl *ServerImpl) ArtistLogin(c *gin.Context) {
	const op = "ArtistLogin"
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		impl.flash(c, FlashWarning, msgMissingFields)
		c.Redirect(http.StatusSeeOther, "/artist_login")
		return
	}
	artist, err := impl.accounts.AuthenticateArtist(c.Request.Context(), form.Username, form.Password)
	if errors.Is(err, accounts.ErrInvalidCredentials) {
		impl.flash(c, FlashDanger, "Invalid artist credentials!")
		c.Redirect(http.StatusSeeOther, "/artist_login")
		return
	}
	if err != nil {
		impl.fail(c, op, err, "/artist_login")
		return
	}
	if err := impl.login(c, SESSION_KEY_ARTIST, SESSION_KEY_ARTIST_ID, artist.Username, artist.ID); err != nil {
		impl.internalError(c, op, err)
		return
	}
	impl.succeed(c, fmt.Sprintf("Welcome, %s!", artist.FullName), "/artist_home")
}

// CustomerLogin 驗證買家帳號並寫入 session
func (impl *ServerImpl) CustomerLogin(c *gin.Context) {
	const op = "CustomerLogin"
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		impl.flash(c, FlashWarning, msgMissingFields)
		c.Redirect(http.StatusSeeOther, "/customer_login")
		return
	}
	customer, err := impl.accounts.AuthenticateCustomer(c.Request.Context(), form.Username, form.Password)
	if errors.Is(err, accounts.ErrInvalidCredentials) {
		impl.flash(c, FlashDanger, "Invalid customer credentials!")
		c.Redirect(http.StatusSeeOther, "/customer_login")
		return
	}
	if err != nil {
		impl.fail(c, op, err, "/customer_login")
		return
	}
	if err := impl.login(c, SESSION_KEY_CUSTOMER, SESSION_KEY_CUSTOMER_ID, customer.Username, customer.ID); err != nil {
		impl.internalError(c, op, err)
		return
	}
	impl.succeed(c, fmt.Sprintf("Welcome, %s!", customer.FullName), "/customer_home")
}

func (impl *ServerImpl) login(c *gin.Context, nameKey, idKey, username string, id uint) error {
	sess, err := session.GetSession(c)
	if err != nil {
		return err
	}
	sess.Set(nameKey, username)
	sess.Set(idKey, strconv.FormatUint(uint64(id), 10))
	return nil
}

func (impl *ServerImpl) ArtistRegister(c *gin.Context) {
	const op = "ArtistRegister"
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		impl.flash(c, FlashWarning, msgMissingFields)
		c.Redirect(http.StatusSeeOther, "/artist_register")
		return
	}
	_, err := impl.accounts.RegisterArtist(c.Request.Context(), impl.textChecker.Sanitize(form.FullName), form.Username, form.Password)
	if err != nil {
		impl.fail(c, op, err, "/artist_register")
		return
	}
	impl.succeed(c, "Artist registration successful!", "/artist_login")
}

func (impl *ServerImpl) CustomerRegister(c *gin.Context) {
	const op = "CustomerRegister"
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		impl.flash(c, FlashWarning, msgMissingFields)
		c.Redirect(http.StatusSeeOther, "/customer_register")
		return
	}
	_, err := impl.accounts.RegisterCustomer(c.Request.Context(), impl.textChecker.Sanitize(form.FullName), form.Username, form.Password)
	if err != nil {
		impl.fail(c, op, err, "/customer_register")
		return
	}
	impl.succeed(c, "Customer registration successful!", "/customer_login")
}

// Logout 清除 session 後轉址回首頁
func (impl *ServerImpl) Logout(c *gin.Context) {
	const op = "Logout"
	sess, err := session.GetSession(c)
	if err != nil {
		impl.internalError(c, op, err)
		return
	}
	sess.Clear()
	addFlash(sess, FlashInfo, "You have been logged out.")
	c.Redirect(http.StatusSeeOther, "/")
}
