package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	internalS3 "gallery/adapters/s3"
	"gallery/api/openapi"
	"gallery/catalog"
	"gallery/models"
)

type artworkForm struct {
	Title       string `form:"title" binding:"required"`
	Type        string `form:"type" binding:"required"`
	Year        int    `form:"year" binding:"gte=0"`
	Description string `form:"description"`
	ArtistID    uint   `form:"artist_id" binding:"required"`
	StockID     uint   `form:"stock_id" binding:"required"`
}

type artistForm struct {
	Name    string `form:"name" binding:"required"`
	Style   string `form:"style"`
	DOB     string `form:"dob"`
	Contact string `form:"contact"`
	Email   string `form:"email" binding:"omitempty,email"`
}

func (impl *ServerImpl) ArtistHome(c *gin.Context) {
	impl.render(c, SESSION_KEY_ARTIST, nil)
}

// Home 是舊連結，轉址到藝術家首頁
func (impl *ServerImpl) Home(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/artist_home")
}

// Gallery 列出所有作品
func (impl *ServerImpl) Gallery(c *gin.Context) {
	const op = "Gallery"
	artworks, err := impl.catalog.ListGallery(c.Request.Context())
	if err != nil {
		impl.internalError(c, op, err)
		return
	}
	impl.render(c, SESSION_KEY_ARTIST, gin.H{"artworks": artworks})
}

// AddArtworkPage 提供新增作品需要的藝術家與庫存選項
func (impl *ServerImpl) AddArtworkPage(c *gin.Context) {
	const op = "AddArtworkPage"
	artists, err := impl.catalog.ListArtists(c.Request.Context())
	if err != nil {
		impl.internalError(c, op, err)
		return
	}
	stocks, err := impl.catalog.ListStocks(c.Request.Context())
	if err != nil {
		impl.internalError(c, op, err)
		return
	}
	impl.render(c, SESSION_KEY_ARTIST, gin.H{
		"artists": lo.Map(artists, func(a models.Artist, _ int) gin.H {
			return gin.H{"artistId": a.ID, "name": a.Name, "style": a.Style}
		}),
		"stocks": lo.Map(stocks, func(s models.Stock, _ int) gin.H {
			return gin.H{"stockId": s.ID, "availableCount": s.AvailableCount}
		}),
	})
}

func (impl *ServerImpl) AddArtwork(c *gin.Context) {
	const op = "AddArtwork"
	var form artworkForm
	if err := c.ShouldBind(&form); err != nil {
		impl.flash(c, FlashWarning, msgMissingFields)
		c.Redirect(http.StatusSeeOther, "/add_artwork")
		return
	}
	_, err := impl.catalog.AddArtwork(c.Request.Context(), catalog.NewArtwork{
		Title:       impl.textChecker.Sanitize(strings.TrimSpace(form.Title)),
		Type:        impl.textChecker.Sanitize(strings.TrimSpace(form.Type)),
		Year:        form.Year,
		Description: impl.htmlChecker.Sanitize(form.Description),
		ArtistID:    form.ArtistID,
		StockID:     form.StockID,
	})
	if err != nil {
		impl.fail(c, op, err, "/add_artwork")
		return
	}
	impl.succeed(c, "Artwork added successfully!", "/gallery")
}

func (impl *ServerImpl) AddArtistPage(c *gin.Context) {
	impl.render(c, SESSION_KEY_ARTIST, nil)
}

func (impl *ServerImpl) AddArtist(c *gin.Context) {
	const op = "AddArtist"
	var form artistForm
	if err := c.ShouldBind(&form); err != nil {
		impl.flash(c, FlashWarning, msgMissingFields)
		c.Redirect(http.StatusSeeOther, "/add_artist")
		return
	}
	var dob *time.Time
	if form.DOB != "" {
		parsed, err := time.Parse(time.DateOnly, form.DOB)
		if err != nil {
			impl.flash(c, FlashWarning, "Date of birth must be in YYYY-MM-DD format.")
			c.Redirect(http.StatusSeeOther, "/add_artist")
			return
		}
		dob = &parsed
	}
	_, err := impl.catalog.AddArtist(c.Request.Context(), catalog.NewArtist{
		Name:        impl.textChecker.Sanitize(strings.TrimSpace(form.Name)),
		Style:       impl.textChecker.Sanitize(form.Style),
		DateOfBirth: dob,
		Contact:     impl.textChecker.Sanitize(form.Contact),
		Email:       form.Email,
	})
	if err != nil {
		impl.fail(c, op, err, "/add_artist")
		return
	}
	impl.succeed(c, "Artist added successfully!", "/artist_home")
}

// UploadArtworkImage 上傳作品圖片
// (POST /artwork/{artworkID}/image)
func (impl *ServerImpl) UploadArtworkImage(c *gin.Context, artworkID int) {
	const op = "UploadArtworkImage"
	if impl.images == nil {
		c.JSON(http.StatusServiceUnavailable, openapi.Message{Message: "image storage is not configured"})
		return
	}
	if artworkID <= 0 {
		c.JSON(http.StatusBadRequest, openapi.Message{Message: "invalid artwork id"})
		return
	}
	ctx := c.Request.Context()
	if _, err := impl.catalog.GetArtworkByID(ctx, uint(artworkID)); err != nil {
		if errors.Is(err, catalog.ErrArtworkNotFound) {
			c.JSON(http.StatusNotFound, openapi.Message{Message: catalog.ErrArtworkNotFound.Message})
			return
		}
		impl.internalError(c, op, err)
		return
	}

	url, err := impl.images.Upload(ctx, fmt.Sprintf("artworks/%d", artworkID), c.Request.Body)
	var sizeErr *internalS3.ImageTooLargeError
	var imageErr *internalS3.InsecureImageError
	if errors.As(err, &sizeErr) || errors.As(err, &imageErr) {
		c.JSON(http.StatusBadRequest, openapi.Message{Message: err.Error()})
		return
	}
	if err != nil {
		impl.internalError(c, op, err)
		return
	}
	if err := impl.catalog.SetImageURL(ctx, uint(artworkID), url); err != nil {
		impl.internalError(c, op, err)
		return
	}
	c.Header("Location", url)
	c.JSON(http.StatusCreated, openapi.ImageUpload{Url: url})
}
