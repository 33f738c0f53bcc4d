package api

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"book3d-renderer/internal/geometry"
	"book3d-renderer/internal/imgio"
	"book3d-renderer/internal/params"
	"book3d-renderer/internal/render"
)

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// renderHandler accepts a multipart form with a "cover" file, one or more
// "spine" files in stack order, and optional form fields named like the
// JSON config keys. Responds with the rendered PNG.
func renderHandler(c *gin.Context) {
	p := params.Default()
	if err := applyForm(c, &p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	covers := form.File["cover"]
	if len(covers) != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exactly one cover file is required"})
		return
	}
	cover, err := decodeUpload(covers[0])
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cover: " + err.Error()})
		return
	}

	spineFiles := form.File["spine"]
	if len(spineFiles) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one spine file is required"})
		return
	}
	spines := make([]*image.NRGBA, 0, len(spineFiles))
	for _, fh := range spineFiles {
		s, err := decodeUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "spine: " + err.Error()})
			return
		}
		spines = append(spines, s)
	}

	img, err := render.Render(p, cover, spines)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// statusFor maps the core's structured errors onto HTTP statuses:
// bad configuration and mismatched inputs are the client's fault,
// unrenderable geometry is a valid request we cannot satisfy.
func statusFor(err error) int {
	var invalid *params.InvalidParameterError
	var mismatch *render.ImageDimensionMismatchError
	var degenerate *geometry.DegenerateGeometryError
	switch {
	case errors.As(err, &invalid), errors.As(err, &mismatch):
		return http.StatusBadRequest
	case errors.As(err, &degenerate):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func decodeUpload(fh *multipart.FileHeader) (*image.NRGBA, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return imgio.Decode(f)
}

func applyForm(c *gin.Context, p *params.RenderParams) error {
	if err := floatField(c, "perspective_angle", &p.PerspectiveAngle); err != nil {
		return err
	}
	if err := floatField(c, "spine_spread_angle", &p.SpineSpreadAngle); err != nil {
		return err
	}
	if err := floatField(c, "book_distance", &p.BookDistance); err != nil {
		return err
	}
	if err := floatField(c, "cover_width", &p.CoverWidth); err != nil {
		return err
	}
	if err := floatField(c, "camera_height_ratio", &p.CameraHeightRatio); err != nil {
		return err
	}
	if err := floatField(c, "border_percentage", &p.BorderPercentage); err != nil {
		return err
	}
	if err := floatField(c, "spine_width_stretch", &p.SpineWidthStretch); err != nil {
		return err
	}
	if err := intField(c, "final_size", &p.FinalSize); err != nil {
		return err
	}
	if err := intField(c, "bg_alpha", &p.BgAlpha); err != nil {
		return err
	}
	if err := intField(c, "supersample", &p.Supersample); err != nil {
		return err
	}

	if v := c.PostForm("bg_color"); v != "" {
		col, err := params.ParseHexColor(v)
		if err != nil {
			return err
		}
		p.BgColor = col
	}
	if v := c.PostForm("book_type"); v != "" {
		p.BookType = params.BookType(v)
	}
	if v := c.PostForm("shadow_mode"); v != "" {
		p.ShadowMode = params.ShadowMode(v)
	}
	if v := c.PostForm("stroke_enabled"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &params.InvalidParameterError{Field: "stroke_enabled", Value: v, Range: "true|false"}
		}
		p.StrokeEnabled = b
	}
	return nil
}

func floatField(c *gin.Context, name string, dst *float64) error {
	v := c.PostForm(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return &params.InvalidParameterError{Field: name, Value: v, Range: "number"}
	}
	*dst = f
	return nil
}

func intField(c *gin.Context, name string, dst *int) error {
	v := c.PostForm(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return &params.InvalidParameterError{Field: name, Value: v, Range: "integer"}
	}
	*dst = n
	return nil
}
