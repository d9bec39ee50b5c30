package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/voluntai/voluntai-api/internal/models"
)

// EnrollmentHandlerTestSuite exercises the enrollment ledger end to end.
type EnrollmentHandlerTestSuite struct {
	suite.Suite
	env *testEnv

	org         *models.User
	volunteer   *models.User
	opportunity *models.Opportunity
}

func (s *EnrollmentHandlerTestSuite) SetupTest() {
	s.env = setupTestEnv(s.T())
	s.org = s.env.createUser(s.T(), "ONG A", "onga@example.com", models.KindOrganization)
	s.volunteer = s.env.createUser(s.T(), "V1", "v1@example.com", models.KindIndividual)
	s.opportunity = s.env.createOpportunity(s.T(), s.org, "Mutirão de Limpeza", "Meio Ambiente", 10)
}

func (s *EnrollmentHandlerTestSuite) enroll(token string, opportunityID uint64) *httptest.ResponseRecorder {
	return postJSON(s.T(), s.env, "/api/inscricoes", token, map[string]interface{}{
		"vagaId": opportunityID,
	})
}

func (s *EnrollmentHandlerTestSuite) cancel(token string, opportunityID uint64) *httptest.ResponseRecorder {
	body, err := json.Marshal(map[string]interface{}{"vagaId": opportunityID})
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodDelete, "/api/inscricoes", jsonReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.env.router.ServeHTTP(w, req)
	return w
}

func (s *EnrollmentHandlerTestSuite) TestEnrollThenCancelIsIdempotent() {
	token := s.env.token(s.T(), s.volunteer)

	w := s.enroll(token, s.opportunity.ID)
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.cancel(token, s.opportunity.ID)
	s.Require().Equal(http.StatusOK, w.Code)

	var count int64
	s.env.db.Model(&models.Enrollment{}).Count(&count)
	s.Require().Zero(count)

	// A second cancel finds nothing and is still a 200.
	w = s.cancel(token, s.opportunity.ID)
	s.Require().Equal(http.StatusOK, w.Code)
}

func (s *EnrollmentHandlerTestSuite) TestDuplicateEnrollRejected() {
	token := s.env.token(s.T(), s.volunteer)

	s.Require().Equal(http.StatusCreated, s.enroll(token, s.opportunity.ID).Code)

	w := s.enroll(token, s.opportunity.ID)
	s.Require().Equal(http.StatusBadRequest, w.Code)
	s.Require().Contains(w.Body.String(), "já está inscrito")
}

func (s *EnrollmentHandlerTestSuite) TestEnrollUnknownOpportunity() {
	token := s.env.token(s.T(), s.volunteer)

	w := s.enroll(token, 424242)
	s.Require().Equal(http.StatusNotFound, w.Code)
}

func (s *EnrollmentHandlerTestSuite) TestEnrollRejectedOnceSlotsExhausted() {
	tight := s.env.createOpportunity(s.T(), s.org, "Vaga Única", "Geral", 1)

	first := s.env.token(s.T(), s.volunteer)
	s.Require().Equal(http.StatusCreated, s.enroll(first, tight.ID).Code)

	second := s.env.createUser(s.T(), "V2", "v2@example.com", models.KindIndividual)
	w := s.enroll(s.env.token(s.T(), second), tight.ID)
	s.Require().Equal(http.StatusBadRequest, w.Code)
	s.Require().Contains(w.Body.String(), "Não há vagas disponíveis")
}

func (s *EnrollmentHandlerTestSuite) TestZeroSlotsMeansUnlimited() {
	open := s.env.createOpportunity(s.T(), s.org, "Vaga Aberta", "Geral", 0)

	for i := 0; i < 3; i++ {
		v := s.env.createUser(s.T(), fmt.Sprintf("V%d", i+10), fmt.Sprintf("v%d@example.com", i+10), models.KindIndividual)
		s.Require().Equal(http.StatusCreated, s.enroll(s.env.token(s.T(), v), open.ID).Code)
	}
}

func (s *EnrollmentHandlerTestSuite) TestConfirmByNonOwnerForbidden() {
	token := s.env.token(s.T(), s.volunteer)
	s.Require().Equal(http.StatusCreated, s.enroll(token, s.opportunity.ID).Code)

	var enrollment models.Enrollment
	s.Require().NoError(s.env.db.First(&enrollment).Error)

	// The volunteer is not the posting owner.
	w := postJSON(s.T(), s.env, "/api/inscricoes/confirmar-presenca", token, map[string]interface{}{
		"inscricaoId": enrollment.ID,
	})
	s.Require().Equal(http.StatusForbidden, w.Code)
}

func (s *EnrollmentHandlerTestSuite) TestConfirmDefaultsToOneHour() {
	s.Require().Equal(http.StatusCreated, s.enroll(s.env.token(s.T(), s.volunteer), s.opportunity.ID).Code)

	var enrollment models.Enrollment
	s.Require().NoError(s.env.db.First(&enrollment).Error)

	w := postJSON(s.T(), s.env, "/api/inscricoes/confirmar-presenca", s.env.token(s.T(), s.org), map[string]interface{}{
		"inscricaoId": enrollment.ID,
	})
	s.Require().Equal(http.StatusOK, w.Code)

	var confirmed models.Enrollment
	s.Require().NoError(s.env.db.First(&confirmed, enrollment.ID).Error)
	s.Require().True(confirmed.Confirmed)
	s.Require().NotNil(confirmed.ConfirmedAt)
	s.Require().Equal(1, confirmed.Hours)
}

func (s *EnrollmentHandlerTestSuite) TestConfirmUnknownEnrollment() {
	w := postJSON(s.T(), s.env, "/api/inscricoes/confirmar-presenca", s.env.token(s.T(), s.org), map[string]interface{}{
		"inscricaoId": 424242,
	})
	s.Require().Equal(http.StatusNotFound, w.Code)
}

func (s *EnrollmentHandlerTestSuite) TestStatisticsAggregation() {
	volunteerToken := s.env.token(s.T(), s.volunteer)
	orgToken := s.env.token(s.T(), s.org)

	cleanup := s.opportunity
	teaching := s.env.createOpportunity(s.T(), s.org, "Aula de Reforço", "Educação", 5)
	uncategorized := s.env.createOpportunity(s.T(), s.org, "Sem Categoria", "", 5)

	hours := map[uint64]int{cleanup.ID: 3, teaching.ID: 2, uncategorized.ID: 4}
	for _, opportunity := range []*models.Opportunity{cleanup, teaching, uncategorized} {
		s.Require().Equal(http.StatusCreated, s.enroll(volunteerToken, opportunity.ID).Code)

		var enrollment models.Enrollment
		s.Require().NoError(s.env.db.Where("opportunity_id = ?", opportunity.ID).First(&enrollment).Error)

		w := postJSON(s.T(), s.env, "/api/inscricoes/confirmar-presenca", orgToken, map[string]interface{}{
			"inscricaoId":        enrollment.ID,
			"horasVoluntariadas": hours[opportunity.ID],
		})
		s.Require().Equal(http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/inscricoes/estatisticas", nil)
	req.Header.Set("Authorization", "Bearer "+volunteerToken)
	w := httptest.NewRecorder()
	s.env.router.ServeHTTP(w, req)

	s.Require().Equal(http.StatusOK, w.Code)

	var stats struct {
		TotalActions int            `json:"totalAcoes"`
		TotalHours   int            `json:"totalHoras"`
		Categories   map[string]int `json:"categorias"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &stats))
	s.Require().Equal(3, stats.TotalActions)
	s.Require().Equal(9, stats.TotalHours)
	s.Require().Equal(map[string]int{
		"Meio Ambiente": 1,
		"Educação":      1,
		"Geral":         1,
	}, stats.Categories)
}

func (s *EnrollmentHandlerTestSuite) TestStatisticsIgnoreUnconfirmed() {
	volunteerToken := s.env.token(s.T(), s.volunteer)
	s.Require().Equal(http.StatusCreated, s.enroll(volunteerToken, s.opportunity.ID).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/inscricoes/estatisticas", nil)
	req.Header.Set("Authorization", "Bearer "+volunteerToken)
	w := httptest.NewRecorder()
	s.env.router.ServeHTTP(w, req)

	s.Require().Equal(http.StatusOK, w.Code)

	var stats struct {
		TotalActions int `json:"totalAcoes"`
		TotalHours   int `json:"totalHoras"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &stats))
	s.Require().Zero(stats.TotalActions)
	s.Require().Zero(stats.TotalHours)
}

func (s *EnrollmentHandlerTestSuite) TestListForOpportunityIncludesVolunteer() {
	s.Require().Equal(http.StatusCreated, s.enroll(s.env.token(s.T(), s.volunteer), s.opportunity.ID).Code)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/inscricoes/vaga/%d", s.opportunity.ID), nil)
	req.Header.Set("Authorization", "Bearer "+s.env.token(s.T(), s.org))
	w := httptest.NewRecorder()
	s.env.router.ServeHTTP(w, req)

	s.Require().Equal(http.StatusOK, w.Code)

	var listed []struct {
		Volunteer *struct {
			Name string `json:"nome"`
		} `json:"voluntario"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listed))
	s.Require().Len(listed, 1)
	s.Require().NotNil(listed[0].Volunteer)
	s.Require().Equal("V1", listed[0].Volunteer.Name)
}

func (s *EnrollmentHandlerTestSuite) TestListMineIncludesOpportunity() {
	token := s.env.token(s.T(), s.volunteer)
	s.Require().Equal(http.StatusCreated, s.enroll(token, s.opportunity.ID).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/inscricoes/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.env.router.ServeHTTP(w, req)

	s.Require().Equal(http.StatusOK, w.Code)

	var listed []struct {
		Opportunity *struct {
			Title string `json:"nome"`
		} `json:"vaga"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &listed))
	s.Require().Len(listed, 1)
	s.Require().NotNil(listed[0].Opportunity)
	s.Require().Equal("Mutirão de Limpeza", listed[0].Opportunity.Title)
}

func TestEnrollmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EnrollmentHandlerTestSuite))
}
