package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sejour/internal/delivery/http/validator"
	"sejour/internal/domain/entity"
	"sejour/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// searchRecordingUsecase captures the filters the handler builds from the query string.
type searchRecordingUsecase struct {
	usecase.PropertyUsecase

	gotInput *usecase.SearchPropertiesInput
}

func (s *searchRecordingUsecase) Search(_ context.Context, input *usecase.SearchPropertiesInput) ([]*entity.Property, error) {
	s.gotInput = input

	return []*entity.Property{}, nil
}

// propertyStubUsecase serves the write-path handlers with canned records and
// records the inputs they forward.
type propertyStubUsecase struct {
	usecase.PropertyUsecase

	ownerID   uuid.UUID
	gotCreate *usecase.CreatePropertyInput
	gotUpdate *usecase.UpdatePropertyInput
}

func (s *propertyStubUsecase) Create(_ context.Context, ownerID uuid.UUID, input *usecase.CreatePropertyInput) (*entity.Property, error) {
	s.gotCreate = input

	return &entity.Property{ID: uuid.New(), Title: input.Title, Price: input.Price, OwnerID: ownerID}, nil
}

func (s *propertyStubUsecase) Get(_ context.Context, id uuid.UUID) (*entity.Property, error) {
	return &entity.Property{ID: id, Title: "Alfama loft", Price: 120, OwnerID: s.ownerID}, nil
}

func (s *propertyStubUsecase) OwnerID(_ context.Context, _ uuid.UUID) (uuid.UUID, error) {
	return s.ownerID, nil
}

func (s *propertyStubUsecase) Update(_ context.Context, id uuid.UUID, input *usecase.UpdatePropertyInput) (*entity.Property, error) {
	s.gotUpdate = input

	return &entity.Property{ID: id}, nil
}

func newTestPropertyHandler(propertyUC usecase.PropertyUsecase) *PropertyHandler {
	return NewPropertyHandler(propertyUC, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newJSONContext builds an echo context with the request validator installed,
// the way the server wires it.
func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPropertyHandler_Search_ParsesQueryParams(t *testing.T) {
	uc := &searchRecordingUsecase{}
	h := newTestPropertyHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/property?minPrice=50&maxPrice=200.5&description=loft&limit=5&pageNumber=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.gotInput)
	require.NotNil(t, uc.gotInput.MinPrice)
	require.NotNil(t, uc.gotInput.MaxPrice)
	assert.Equal(t, 50.0, *uc.gotInput.MinPrice)
	assert.Equal(t, 200.5, *uc.gotInput.MaxPrice)
	assert.Equal(t, "loft", uc.gotInput.Description)
	assert.Equal(t, 5, uc.gotInput.Limit)
	assert.Equal(t, 2, uc.gotInput.PageNumber)
}

func TestPropertyHandler_Search_RejectsBadPriceFilter(t *testing.T) {
	uc := &searchRecordingUsecase{}
	h := newTestPropertyHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/property?minPrice=cheap", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotInput)
}

func TestPropertyHandler_Get_RejectsMalformedID(t *testing.T) {
	h := newTestPropertyHandler(&searchRecordingUsecase{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/property/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestPropertyHandler_Create_Success(t *testing.T) {
	uc := &propertyStubUsecase{}
	h := newTestPropertyHandler(uc)

	c, rec := newJSONContext(t, http.MethodPost, "/property",
		`{"title":"Alfama loft","street":"Rua dos Remedios 1","city":"Lisbon","state":"LX","price":120}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.gotCreate)
	assert.Equal(t, "Alfama loft", uc.gotCreate.Title)
	assert.Equal(t, 120.0, uc.gotCreate.Price)
}

func TestPropertyHandler_Create_RejectsEmptyBody(t *testing.T) {
	uc := &propertyStubUsecase{}
	h := newTestPropertyHandler(uc)

	c, rec := newJSONContext(t, http.MethodPost, "/property", "")
	c.Set("userID", uuid.New())

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotCreate)
}

func TestPropertyHandler_Create_RejectsNonPositivePrice(t *testing.T) {
	uc := &propertyStubUsecase{}
	h := newTestPropertyHandler(uc)

	c, rec := newJSONContext(t, http.MethodPost, "/property",
		`{"title":"Alfama loft","street":"Rua dos Remedios 1","city":"Lisbon","state":"LX","price":0}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotCreate)
}

func TestPropertyHandler_CreateBooking_RejectsEmptyBody(t *testing.T) {
	h := newTestPropertyHandler(&propertyStubUsecase{})

	propertyID := uuid.New()
	c, rec := newJSONContext(t, http.MethodPost, "/property/"+propertyID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(propertyID.String())
	c.Set("userID", uuid.New())

	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPropertyHandler_Update_EmptyBodyLeavesFieldsUnset(t *testing.T) {
	ownerID := uuid.New()
	uc := &propertyStubUsecase{ownerID: ownerID}
	h := newTestPropertyHandler(uc)

	propertyID := uuid.New()
	c, rec := newJSONContext(t, http.MethodPatch, "/property/"+propertyID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(propertyID.String())
	c.Set("userID", ownerID)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.gotUpdate)
	assert.Nil(t, uc.gotUpdate.Title)
	assert.Nil(t, uc.gotUpdate.Description)
	assert.Nil(t, uc.gotUpdate.Price)
}

func TestPropertyHandler_Update_RejectsZeroPrice(t *testing.T) {
	ownerID := uuid.New()
	uc := &propertyStubUsecase{ownerID: ownerID}
	h := newTestPropertyHandler(uc)

	propertyID := uuid.New()
	c, rec := newJSONContext(t, http.MethodPatch, "/property/"+propertyID.String(), `{"price":0}`)
	c.SetParamNames("id")
	c.SetParamValues(propertyID.String())
	c.Set("userID", ownerID)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotUpdate)
}

func TestPropertyHandler_Get_SerializesSnakeCaseKeys(t *testing.T) {
	h := newTestPropertyHandler(&propertyStubUsecase{ownerID: uuid.New()})

	propertyID := uuid.New()
	c, rec := newJSONContext(t, http.MethodGet, "/property/"+propertyID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(propertyID.String())

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"owner_id"`)
	assert.Contains(t, body, `"title":"Alfama loft"`)
	assert.NotContains(t, body, `"OwnerID"`)
}
