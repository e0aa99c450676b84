package handler

import (
	"io"
	"net/http"

	"apparel/internal/delivery/api/middleware"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/errors"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// maxUploadSize bounds a single uploaded image.
const maxUploadSize = 5 << 20

// bindRequest decodes the body into req and validates it.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	return userID, nil
}

func currentActor(c echo.Context) (usecase.Actor, error) {
	userID, err := currentUser(c)
	if err != nil {
		return usecase.Actor{}, err
	}

	return usecase.Actor{UserID: userID, IsAdmin: middleware.IsAdmin(c)}, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// optionalUUID parses s, treating the empty string as absent.
func optionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid id " + s)
	}

	return &id, nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails(field + " must be a decimal amount")
	}

	return amount, nil
}

// formUpload reads the multipart file field, returning nil when it is absent.
func formUpload(c echo.Context, field string) (*usecase.Upload, error) {
	header, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed " + field + " upload")
	}
	if header.Size > maxUploadSize {
		return nil, domainerrors.ErrValidationFailed.WithDetails(field + " exceeds 5MB")
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}

	return &usecase.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
