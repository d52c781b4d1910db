package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"parc-system/internal/dto"
	"parc-system/internal/services"
	"parc-system/pkg/customvalidator"
	apperrors "parc-system/pkg/errors"
	"parc-system/pkg/types"
	"parc-system/pkg/utils"
)

type fakeMaterielReadService struct {
	materiels []dto.MaterielDTO
	findErr   error
}

func (s *fakeMaterielReadService) ListMateriels(ctx context.Context, filter types.Filter) ([]dto.MaterielDTO, uint64, error) {
	return s.materiels, uint64(len(s.materiels)), nil
}

func (s *fakeMaterielReadService) FindMateriel(ctx context.Context, id string) (*dto.MaterielDTO, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return &s.materiels[0], nil
}

type stubParcService struct {
	services.ParcServiceInterface
	created *dto.CreateMaterielDTO
}

func (s *stubParcService) CreateMateriel(ctx context.Context, payload dto.CreateMaterielDTO) (*dto.MaterielDTO, error) {
	s.created = &payload
	return &dto.MaterielDTO{ID: "e1b2c3d4-0000-0000-0000-000000000001", Nom: payload.Nom}, nil
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)
	return e
}

func TestListMateriels_Enveloppe(t *testing.T) {
	e := newTestEcho(t)
	read := &fakeMaterielReadService{materiels: []dto.MaterielDTO{{ID: "m-1", Nom: "Dell Latitude 5540"}}}
	ctrl := NewMaterielController(read, &stubParcService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/materiels", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.ListMateriels(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var res utils.HTTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Status)
	assert.Equal(t, "Liste du matériel récupérée", res.Message)
}

func TestFindMateriel_IdentifiantInvalide(t *testing.T) {
	e := newTestEcho(t)
	ctrl := NewMaterielController(&fakeMaterielReadService{}, &stubParcService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("pas-un-uuid")

	require.NoError(t, ctrl.FindMateriel(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Format d'identifiant invalide")
}

func TestFindMateriel_Introuvable(t *testing.T) {
	e := newTestEcho(t)
	read := &fakeMaterielReadService{findErr: apperrors.ErrNotFound}
	ctrl := NewMaterielController(read, &stubParcService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("e1b2c3d4-0000-0000-0000-000000000001")

	require.NoError(t, ctrl.FindMateriel(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateMateriel_ValidationRefusee(t *testing.T) {
	e := newTestEcho(t)
	parc := &stubParcService{}
	ctrl := NewMaterielController(&fakeMaterielReadService{}, parc, zap.NewNop())

	body := `{"modele": "Latitude 5540", "numero_serie": "SN-1", "date_achat": "2024-01-15"}`
	req := httptest.NewRequest(http.MethodPost, "/api/materiels", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.CreateMateriel(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nom")
	assert.Nil(t, parc.created, "le service ne doit pas être appelé")
}

func TestCreateMateriel_Succes(t *testing.T) {
	e := newTestEcho(t)
	parc := &stubParcService{}
	ctrl := NewMaterielController(&fakeMaterielReadService{}, parc, zap.NewNop())

	body := `{"nom": "Dell Latitude 5540", "modele": "Latitude 5540", "numero_serie": "SN-1", "date_achat": "2024-01-15"}`
	req := httptest.NewRequest(http.MethodPost, "/api/materiels", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.CreateMateriel(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, parc.created)
	assert.Equal(t, "SN-1", parc.created.NumeroSerie)
}
