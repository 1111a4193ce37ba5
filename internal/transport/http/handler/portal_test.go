package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/client-portal-api/internal/domain"
	"github.com/client-portal-api/internal/transport/http/middleware"
)

func portalRequest(identity *domain.SessionIdentity) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/clientsPortalPage", nil)
	if identity == nil {
		return req
	}
	return req.WithContext(context.WithValue(req.Context(), middleware.IdentityKey, identity))
}

func TestPortal_ReturnsClientAgreements(t *testing.T) {
	agreements := []domain.Agreement{
		{AgreementID: "a1", AgreementName: "Umowa dystrybucyjna"},
		{AgreementID: "a2", AgreementName: "Umowa serwisowa"},
	}
	svc := &mockPortalService{}
	svc.On("AgreementsForClient", mock.Anything, "c1").Return(agreements, nil)

	rec := httptest.NewRecorder()
	NewPortalHandler(svc).Portal(rec, portalRequest(&domain.SessionIdentity{ID: "c1", Email: "alice@test.com"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body PortalEnvelope
	decodeBody(t, rec, &body)
	assert.Equal(t, "alice@test.com", body.Email)
	assert.Equal(t, agreements, body.Agreements)
}

// A client with no agreements still gets the page, with an empty list rather
// than null.
func TestPortal_NoAgreements(t *testing.T) {
	svc := &mockPortalService{}
	svc.On("AgreementsForClient", mock.Anything, "c1").Return([]domain.Agreement{}, nil)

	rec := httptest.NewRecorder()
	NewPortalHandler(svc).Portal(rec, portalRequest(&domain.SessionIdentity{ID: "c1", Email: "alice@test.com"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"agreements":[]`)
}

func TestPortal_NoIdentity(t *testing.T) {
	svc := &mockPortalService{}
	rec := httptest.NewRecorder()
	NewPortalHandler(svc).Portal(rec, portalRequest(nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "AgreementsForClient", mock.Anything, mock.Anything)
}

func TestPortal_ServiceFailure(t *testing.T) {
	svc := &mockPortalService{}
	svc.On("AgreementsForClient", mock.Anything, "c1").Return(nil, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	NewPortalHandler(svc).Portal(rec, portalRequest(&domain.SessionIdentity{ID: "c1", Email: "alice@test.com"}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body MessageEnvelope
	decodeBody(t, rec, &body)
	assert.Equal(t, "Wystąpił nieznany błąd", body.Message)
}

func TestOffer_ListsCatalogue(t *testing.T) {
	svc := &mockPortalService{}
	svc.On("Offer", mock.Anything).Return([]domain.Agreement{
		{AgreementID: "a1", AgreementName: "Umowa dystrybucyjna"},
	}, nil)

	rec := httptest.NewRecorder()
	NewPortalHandler(svc).Offer(rec, httptest.NewRequest(http.MethodGet, "/offerPage", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body OfferEnvelope
	decodeBody(t, rec, &body)
	assert.Len(t, body.Agreements, 1)
}

func TestOffer_ServiceFailure(t *testing.T) {
	svc := &mockPortalService{}
	svc.On("Offer", mock.Anything).Return(nil, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	NewPortalHandler(svc).Offer(rec, httptest.NewRequest(http.MethodGet, "/offerPage", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
