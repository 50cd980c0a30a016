package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/craftly/craftly-api/internal/application"
	"github.com/craftly/craftly-api/pkg/response"
)

type ProductHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.CatalogService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

// Create POST /api/product (multipart: name, price, description, collectionId, files)
func (h *ProductHandler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	price, err := strconv.ParseFloat(formValue(form, "price"), 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Please fill all details", nil)
		return
	}

	images, err := readImages(form)
	if err != nil {
		h.Logger.WithError(err).Error("read uploaded files failed")
		response.Error(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}

	in := application.CreateProductInput{
		Name:         formValue(form, "name"),
		Price:        price,
		Description:  formValue(form, "description"),
		CollectionID: formValue(form, "collectionId"),
		Images:       images,
	}

	p, err := h.Svc.CreateProduct(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "Please fill all details", nil)
		case errors.Is(err, application.ErrUploadFailed):
			response.Error(c, http.StatusInternalServerError, "Image upload failed", nil)
		default:
			h.Logger.WithError(err).Error("create product failed")
			response.Error(c, http.StatusInternalServerError, "Something went wrong", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"product": p})
}

// List GET /api/product
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.ListProducts(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list products failed")
		response.Error(c, http.StatusInternalServerError, "Something went wrong", nil)
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"products": products})
}

// Search GET /api/product/search?q=
func (h *ProductHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "Query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.SearchProducts(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("search products failed")
		response.Error(c, http.StatusInternalServerError, "Search is unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{"products": hits})
}

func formValue(form *multipart.Form, key string) string {
	if vs := form.Value[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// readImages flattens the file parts of the form into memory. Field
// names are walked in sorted order so storage keys are deterministic
// for a given request.
func readImages(form *multipart.Form) ([]application.ProductImage, error) {
	fields := make([]string, 0, len(form.File))
	for name := range form.File {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	var images []application.ProductImage
	for _, name := range fields {
		for _, fh := range form.File[name] {
			f, err := fh.Open()
			if err != nil {
				return nil, err
			}
			data, err := io.ReadAll(f)
			_ = f.Close()
			if err != nil {
				return nil, err
			}
			images = append(images, application.ProductImage{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}
	return images, nil
}
