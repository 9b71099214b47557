package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/YusovID/refugee-case-service/internal/apperrors"
	"github.com/YusovID/refugee-case-service/internal/domain"
	"github.com/YusovID/refugee-case-service/internal/service"
	"github.com/YusovID/refugee-case-service/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

var (
	testTime = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	refugeeActor = domain.Actor{
		ID:        "actor-refugee",
		Username:  "amina_k",
		Email:     "amina@example.org",
		Role:      domain.RoleRefugee,
		CreatedAt: testTime,
		Profile:   domain.ProfileRef{Kind: domain.RefugeeProfile, ID: 10},
	}
	ngoActor = domain.Actor{
		ID:        "actor-ngo",
		Username:  "helping_hands",
		Email:     "ops@hh.org",
		Role:      domain.RoleNGO,
		CreatedAt: testTime,
		Profile:   domain.ProfileRef{Kind: domain.NGOProfile, ID: 1},
	}
)

type serverMocks struct {
	tokens      *TokensMock
	limiter     *LimiterMock
	actors      *ActorServiceMock
	profiles    *ProfileServiceMock
	listings    *ListingServiceMock
	housingApps *HousingApplicationServiceMock
	jobApps     *JobApplicationServiceMock
}

func newServerMocks() *serverMocks {
	return &serverMocks{
		tokens:      new(TokensMock),
		limiter:     new(LimiterMock),
		actors:      new(ActorServiceMock),
		profiles:    new(ProfileServiceMock),
		listings:    new(ListingServiceMock),
		housingApps: new(HousingApplicationServiceMock),
		jobApps:     new(JobApplicationServiceMock),
	}
}

func (m *serverMocks) handler() http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewServer(log, Services{
		Actors:      m.actors,
		Profiles:    m.profiles,
		Listings:    m.listings,
		HousingApps: m.housingApps,
		JobApps:     m.jobApps,
	}, m.tokens, m.limiter).Routes()
}

func (m *serverMocks) assertExpectations(t *testing.T) {
	m.tokens.AssertExpectations(t)
	m.limiter.AssertExpectations(t)
	m.actors.AssertExpectations(t)
	m.profiles.AssertExpectations(t)
	m.listings.AssertExpectations(t)
	m.housingApps.AssertExpectations(t)
	m.jobApps.AssertExpectations(t)
}

// signedInAs makes validToken resolve to actor.
func (m *serverMocks) signedInAs(actor domain.Actor) {
	m.tokens.On("Parse", validToken).Return(actor.ID, nil)
	m.actors.On("GetActor", mock.Anything, actor.ID).Return(&actor, nil)
}

func newRequest(method, target, body string, authed bool) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+validToken)
	}

	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	return rr
}

func TestServer_PostRegister(t *testing.T) {
	registered := refugeeActor
	registered.Profile = domain.ProfileRef{}

	testCases := []struct {
		name                 string
		requestBody          string
		setupMocks           func(*serverMocks)
		expectedStatusCode   int
		expectedResponseBody string
	}{
		{
			name:        "Success",
			requestBody: `{"username":"amina_k","email":"amina@example.org","role":"refugee"}`,
			setupMocks: func(m *serverMocks) {
				m.actors.On("Register", mock.Anything, service.RegisterInput{
					Username: "amina_k",
					Email:    "amina@example.org",
					Role:     domain.RoleRefugee,
				}).Return(&registered, nil).Once()
				m.tokens.On("Issue", "actor-refugee").Return("signed", testTime.Add(24*time.Hour), nil).Once()
			},
			expectedStatusCode: http.StatusCreated,
			expectedResponseBody: `{
				"actor":{"id":"actor-refugee","username":"amina_k","email":"amina@example.org","first_name":"","last_name":"",
					"role":"refugee","phone_number":"","created_at":"2025-01-02T03:04:05Z"},
				"token":"signed",
				"expires_at":"2025-01-03T03:04:05Z"
			}`,
		},
		{
			name:        "Username taken",
			requestBody: `{"username":"amina_k","email":"amina@example.org","role":"refugee"}`,
			setupMocks: func(m *serverMocks) {
				m.actors.On("Register", mock.Anything, mock.Anything).
					Return(nil, &apperrors.UsernameTakenError{Username: "amina_k"}).Once()
			},
			expectedStatusCode:   http.StatusConflict,
			expectedResponseBody: `{"error":{"code":"ALREADY_EXISTS","message":"username 'amina_k' is already taken"}}`,
		},
		{
			name:                 "Unknown role",
			requestBody:          `{"username":"amina_k","email":"amina@example.org","role":"superuser"}`,
			setupMocks:           func(m *serverMocks) {},
			expectedStatusCode:   http.StatusBadRequest,
			expectedResponseBody: `{"error":{"code":"INVALID_REQUEST","message":"field 'Role' must be one of: ngo, refugee"}}`,
		},
		{
			name:                 "Admin cannot self-register",
			requestBody:          `{"username":"mallory","email":"mallory@example.org","role":"admin"}`,
			setupMocks:           func(m *serverMocks) {},
			expectedStatusCode:   http.StatusBadRequest,
			expectedResponseBody: `{"error":{"code":"INVALID_REQUEST","message":"field 'Role' must be one of: ngo, refugee"}}`,
		},
		{
			name:                 "Invalid JSON body",
			requestBody:          `{invalid json}`,
			setupMocks:           func(m *serverMocks) {},
			expectedStatusCode:   http.StatusBadRequest,
			expectedResponseBody: `{"error":{"code":"INVALID_REQUEST","message":"invalid request body: invalid character 'i' looking for beginning of object key string"}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServerMocks()
			tc.setupMocks(m)

			rr := serve(m.handler(), newRequest(http.MethodPost, "/register", tc.requestBody, false))

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
			assert.JSONEq(t, tc.expectedResponseBody, rr.Body.String())
			m.assertExpectations(t)
		})
	}
}

func TestServer_Authentication(t *testing.T) {
	testCases := []struct {
		name                 string
		header               string
		setupMocks           func(*serverMocks)
		expectedStatusCode   int
		expectedResponseBody string
	}{
		{
			name:                 "Missing header",
			header:               "",
			setupMocks:           func(m *serverMocks) {},
			expectedStatusCode:   http.StatusUnauthorized,
			expectedResponseBody: `{"error":{"code":"UNAUTHORIZED","message":"authentication required"}}`,
		},
		{
			name:                 "Wrong scheme",
			header:               "Basic dXNlcjpwYXNz",
			setupMocks:           func(m *serverMocks) {},
			expectedStatusCode:   http.StatusUnauthorized,
			expectedResponseBody: `{"error":{"code":"UNAUTHORIZED","message":"authentication required"}}`,
		},
		{
			name:   "Invalid token",
			header: "Bearer forged",
			setupMocks: func(m *serverMocks) {
				m.tokens.On("Parse", "forged").Return("", apperrors.ErrUnauthorized).Once()
			},
			expectedStatusCode:   http.StatusUnauthorized,
			expectedResponseBody: `{"error":{"code":"UNAUTHORIZED","message":"authentication required"}}`,
		},
		{
			name:   "Deleted actor",
			header: "Bearer " + validToken,
			setupMocks: func(m *serverMocks) {
				m.tokens.On("Parse", validToken).Return("gone", nil).Once()
				m.actors.On("GetActor", mock.Anything, "gone").Return(nil, apperrors.ErrNotFound).Once()
			},
			expectedStatusCode:   http.StatusUnauthorized,
			expectedResponseBody: `{"error":{"code":"UNAUTHORIZED","message":"authentication required"}}`,
		},
		{
			name:   "Store failure",
			header: "Bearer " + validToken,
			setupMocks: func(m *serverMocks) {
				m.tokens.On("Parse", validToken).Return("actor-ngo", nil).Once()
				m.actors.On("GetActor", mock.Anything, "actor-ngo").Return(nil, errors.New("connection reset")).Once()
			},
			expectedStatusCode:   http.StatusInternalServerError,
			expectedResponseBody: `{"error":{"code":"INTERNAL","message":"internal server error"}}`,
		},
		{
			name:   "Success",
			header: "bearer " + validToken,
			setupMocks: func(m *serverMocks) {
				m.signedInAs(ngoActor)
			},
			expectedStatusCode: http.StatusOK,
			expectedResponseBody: `{"actor":{"id":"actor-ngo","username":"helping_hands","email":"ops@hh.org","first_name":"",
				"last_name":"","role":"ngo","phone_number":"","created_at":"2025-01-02T03:04:05Z","ngo_id":1}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServerMocks()
			tc.setupMocks(m)

			req := newRequest(http.MethodGet, "/me", "", false)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rr := serve(m.handler(), req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
			assert.JSONEq(t, tc.expectedResponseBody, rr.Body.String())
			m.assertExpectations(t)
		})
	}
}

func TestServer_PostHousingApply(t *testing.T) {
	app := &domain.HousingApplication{
		ID:              7,
		RefugeeID:       10,
		HousingID:       5,
		Status:          domain.StatusPending,
		Notes:           "family of four",
		ApplicationDate: testTime,
	}

	testCases := []struct {
		name                 string
		target               string
		requestBody          string
		setupMocks           func(*serverMocks)
		expectedStatusCode   int
		expectedResponseBody string
	}{
		{
			name:        "Success",
			target:      "/housing/5/apply",
			requestBody: `{"notes":"family of four"}`,
			setupMocks: func(m *serverMocks) {
				m.signedInAs(refugeeActor)
				m.limiter.On("Allow", mock.Anything, "actor-refugee").Return(true).Once()
				m.housingApps.On("Submit", mock.Anything, refugeeActor, int64(5), "family of four").Return(app, nil).Once()
			},
			expectedStatusCode: http.StatusCreated,
			expectedResponseBody: `{"application":{"id":7,"refugee_id":10,"housing_id":5,"status":"pending",
				"notes":"family of four","application_date":"2025-01-02T03:04:05Z"}}`,
		},
		{
			name:   "Empty body",
			target: "/housing/5/apply",
			setupMocks: func(m *serverMocks) {
				m.signedInAs(refugeeActor)
				m.limiter.On("Allow", mock.Anything, "actor-refugee").Return(true).Once()
				m.housingApps.On("Submit", mock.Anything, refugeeActor, int64(5), "").Return(app, nil).Once()
			},
			expectedStatusCode: http.StatusCreated,
			expectedResponseBody: `{"application":{"id":7,"refugee_id":10,"housing_id":5,"status":"pending",
				"notes":"family of four","application_date":"2025-01-02T03:04:05Z"}}`,
		},
		{
			name:        "Duplicate",
			target:      "/housing/5/apply",
			requestBody: `{}`,
			setupMocks: func(m *serverMocks) {
				m.signedInAs(refugeeActor)
				m.limiter.On("Allow", mock.Anything, "actor-refugee").Return(true).Once()
				m.housingApps.On("Submit", mock.Anything, refugeeActor, int64(5), "").
					Return(nil, &apperrors.DuplicateApplicationError{Kind: "housing", RefugeeID: 10, TargetID: 5}).Once()
			},
			expectedStatusCode:   http.StatusConflict,
			expectedResponseBody: `{"error":{"code":"DUPLICATE_APPLICATION","message":"application already exists"}}`,
		},
		{
			name:        "Unavailable",
			target:      "/housing/5/apply",
			requestBody: `{}`,
			setupMocks: func(m *serverMocks) {
				m.signedInAs(refugeeActor)
				m.limiter.On("Allow", mock.Anything, "actor-refugee").Return(true).Once()
				m.housingApps.On("Submit", mock.Anything, refugeeActor, int64(5), "").
					Return(nil, apperrors.ErrUnavailable).Once()
			},
			expectedStatusCode:   http.StatusConflict,
			expectedResponseBody: `{"error":{"code":"UNAVAILABLE","message":"housing is not available"}}`,
		},
		{
			name:        "Refugee without profile",
			target:      "/housing/5/apply",
			requestBody: `{}`,
			setupMocks: func(m *serverMocks) {
				m.signedInAs(refugeeActor)
				m.limiter.On("Allow", mock.Anything, "actor-refugee").Return(true).Once()
				m.housingApps.On("Submit", mock.Anything, refugeeActor, int64(5), "").
					Return(nil, &apperrors.NotEligibleError{Operation: "apply_housing", Reason: "no refugee profile"}).Once()
			},
			expectedStatusCode:   http.StatusUnprocessableEntity,
			expectedResponseBody: `{"error":{"code":"NOT_ELIGIBLE","message":"not eligible for 'apply_housing': no refugee profile"}}`,
		},
		{
			name:        "NGO denied",
			target:      "/housing/5/apply",
			requestBody: `{}`,
			setupMocks: func(m *serverMocks) {
				m.signedInAs(ngoActor)
				m.limiter.On("Allow", mock.Anything, "actor-ngo").Return(true).Once()
				m.housingApps.On("Submit", mock.Anything, ngoActor, int64(5), "").
					Return(nil, &apperrors.DeniedError{Operation: "apply_housing", Reason: "role ngo"}).Once()
			},
			expectedStatusCode:   http.StatusForbidden,
			expectedResponseBody: `{"error":{"code":"DENIED","message":"operation 'apply_housing' denied: role ngo"}}`,
		},
		{
			name:        "Rate limited",
			target:      "/housing/5/apply",
			requestBody: `{}`,
			setupMocks: func(m *serverMocks) {
				m.signedInAs(refugeeActor)
				m.limiter.On("Allow", mock.Anything, "actor-refugee").Return(false).Once()
				m.limiter.On("Window").Return(time.Minute).Once()
			},
			expectedStatusCode:   http.StatusTooManyRequests,
			expectedResponseBody: `{"error":{"code":"RATE_LIMITED","message":"too many requests"}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServerMocks()
			tc.setupMocks(m)

			rr := serve(m.handler(), newRequest(http.MethodPost, tc.target, tc.requestBody, true))

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
			assert.JSONEq(t, tc.expectedResponseBody, rr.Body.String())
			m.assertExpectations(t)
		})
	}
}

func TestServer_PostHousingApply_RetryAfter(t *testing.T) {
	m := newServerMocks()
	m.signedInAs(refugeeActor)
	m.limiter.On("Allow", mock.Anything, "actor-refugee").Return(false).Once()
	m.limiter.On("Window").Return(2 * time.Minute).Once()

	rr := serve(m.handler(), newRequest(http.MethodPost, "/housing/5/apply", `{}`, true))

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "120", rr.Header().Get("Retry-After"))
	m.housingApps.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestServer_InvalidPathID(t *testing.T) {
	for _, target := range []string{"/housing/abc/apply", "/jobs/1.5", "/applications/jobs/x/status"} {
		t.Run(target, func(t *testing.T) {
			m := newServerMocks()
			method := http.MethodPost
			if target == "/jobs/1.5" {
				method = http.MethodGet
			}

			rr := serve(m.handler(), newRequest(method, target, `{}`, true))

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var body api.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, api.INVALIDREQUEST, body.Error.Code)
			assert.True(t, strings.HasPrefix(body.Error.Message, "invalid request body: invalid id"), body.Error.Message)
			m.assertExpectations(t)
		})
	}
}

func TestServer_PostHousingDecision(t *testing.T) {
	decided := testTime.Add(time.Hour)
	approved := &domain.HousingApplication{
		ID:              7,
		RefugeeID:       10,
		HousingID:       5,
		Status:          domain.StatusApproved,
		ApplicationDate: testTime,
		DecisionDate:    &decided,
	}

	testCases := []struct {
		name                 string
		requestBody          string
		setupMocks           func(*serverMocks)
		expectedStatusCode   int
		expectedResponseBody string
	}{
		{
			name:        "Approve",
			requestBody: `{"decision":"approved"}`,
			setupMocks: func(m *serverMocks) {
				m.signedInAs(ngoActor)
				m.housingApps.On("Decide", mock.Anything, ngoActor, int64(7), domain.DecisionApproved).Return(approved, nil).Once()
			},
			expectedStatusCode: http.StatusOK,
			expectedResponseBody: `{"application":{"id":7,"refugee_id":10,"housing_id":5,"status":"approved","notes":"",
				"application_date":"2025-01-02T03:04:05Z","decision_date":"2025-01-02T04:04:05Z"}}`,
		},
		{
			name:        "Capacity exceeded",
			requestBody: `{"decision":"approved"}`,
			setupMocks: func(m *serverMocks) {
				m.signedInAs(ngoActor)
				m.housingApps.On("Decide", mock.Anything, ngoActor, int64(7), domain.DecisionApproved).
					Return(nil, &apperrors.CapacityExceededError{HousingID: 5, Capacity: 1}).Once()
			},
			expectedStatusCode:   http.StatusConflict,
			expectedResponseBody: `{"error":{"code":"CAPACITY_EXCEEDED","message":"housing 5 is at full capacity (1)"}}`,
		},
		{
			name:        "Already decided",
			requestBody: `{"decision":"rejected"}`,
			setupMocks: func(m *serverMocks) {
				m.signedInAs(ngoActor)
				m.housingApps.On("Decide", mock.Anything, ngoActor, int64(7), domain.DecisionRejected).
					Return(nil, &apperrors.InvalidTransitionError{Kind: "housing", From: "approved", To: "rejected"}).Once()
			},
			expectedStatusCode:   http.StatusConflict,
			expectedResponseBody: `{"error":{"code":"INVALID_TRANSITION","message":"housing application cannot move from 'approved' to 'rejected'"}}`,
		},
		{
			name:        "Unknown decision",
			requestBody: `{"decision":"maybe"}`,
			setupMocks: func(m *serverMocks) {
				m.signedInAs(ngoActor)
			},
			expectedStatusCode:   http.StatusBadRequest,
			expectedResponseBody: `{"error":{"code":"INVALID_REQUEST","message":"field 'Decision' must be one of: approved, rejected"}}`,
		},
		{
			name:        "Application not found",
			requestBody: `{"decision":"approved"}`,
			setupMocks: func(m *serverMocks) {
				m.signedInAs(ngoActor)
				m.housingApps.On("Decide", mock.Anything, ngoActor, int64(7), domain.DecisionApproved).
					Return(nil, apperrors.ErrNotFound).Once()
			},
			expectedStatusCode:   http.StatusNotFound,
			expectedResponseBody: `{"error":{"code":"NOT_FOUND","message":"resource not found"}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServerMocks()
			tc.setupMocks(m)

			rr := serve(m.handler(), newRequest(http.MethodPost, "/applications/housing/7/decision", tc.requestBody, true))

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
			assert.JSONEq(t, tc.expectedResponseBody, rr.Body.String())
			m.assertExpectations(t)
		})
	}
}

func TestServer_PostJobStatus(t *testing.T) {
	interview := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Schedule interview", func(t *testing.T) {
		m := newServerMocks()
		m.signedInAs(ngoActor)
		m.jobApps.On("Advance", mock.Anything, ngoActor, int64(3), mock.MatchedBy(func(in service.AdvanceInput) bool {
			return in.Status == domain.StatusInterview &&
				in.InterviewDate != nil && in.InterviewDate.Equal(interview) &&
				in.Notes != nil && *in.Notes == "bring documents"
		})).Return(&domain.JobApplication{ID: 3, JobID: 2, RefugeeID: 10, Status: domain.StatusInterview}, nil).Once()

		body := `{"status":"interview","interview_date":"2025-02-01T10:00:00Z","notes":"bring documents"}`
		rr := serve(m.handler(), newRequest(http.MethodPost, "/applications/jobs/3/status", body, true))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Application domain.JobApplication `json:"application"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, domain.StatusInterview, resp.Application.Status)
		m.assertExpectations(t)
	})

	t.Run("Pending is not a pipeline status", func(t *testing.T) {
		m := newServerMocks()
		m.signedInAs(ngoActor)

		rr := serve(m.handler(), newRequest(http.MethodPost, "/applications/jobs/3/status", `{"status":"pending"}`, true))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
		m.jobApps.AssertNotCalled(t, "Advance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestServer_PostRefugee(t *testing.T) {
	refugee := &domain.Refugee{ID: 10, ActorID: "actor-refugee", Gender: domain.GenderFemale, FamilySize: 4}
	body := `{"date_of_birth":"1990-05-17","gender":"F","family_size":4,"country_of_origin":"Sudan"}`

	testCases := []struct {
		name               string
		created            bool
		expectedStatusCode int
	}{
		{name: "Created", created: true, expectedStatusCode: http.StatusCreated},
		{name: "Already exists", created: false, expectedStatusCode: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServerMocks()
			m.signedInAs(refugeeActor)
			m.profiles.On("CreateRefugeeProfile", mock.Anything, refugeeActor, mock.MatchedBy(func(in service.RefugeeInput) bool {
				return in.DateOfBirth.Equal(time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)) &&
					in.Gender == domain.GenderFemale && in.CountryOfOrigin == "Sudan"
			})).Return(refugee, tc.created, nil).Once()

			rr := serve(m.handler(), newRequest(http.MethodPost, "/refugees", body, true))

			assert.Equal(t, tc.expectedStatusCode, rr.Code)

			var resp struct {
				Refugee domain.Refugee `json:"refugee"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, int64(10), resp.Refugee.ID)
			m.assertExpectations(t)
		})
	}

	t.Run("Bad date", func(t *testing.T) {
		m := newServerMocks()
		m.signedInAs(refugeeActor)

		bad := `{"date_of_birth":"17/05/1990","gender":"F","family_size":4,"country_of_origin":"Sudan"}`
		rr := serve(m.handler(), newRequest(http.MethodPost, "/refugees", bad, true))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":{"code":"INVALID_REQUEST","message":"field 'DateOfBirth' failed on the 'datetime' tag"}}`, rr.Body.String())
	})
}

func TestServer_PublicListings(t *testing.T) {
	t.Run("Open jobs only", func(t *testing.T) {
		m := newServerMocks()
		m.listings.On("ListJobs", mock.Anything, true).Return([]domain.Job{}, nil).Once()

		rr := serve(m.handler(), newRequest(http.MethodGet, "/jobs?open=true", "", false))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"jobs":[]}`, rr.Body.String())
		m.assertExpectations(t)
	})

	t.Run("All housing", func(t *testing.T) {
		m := newServerMocks()
		m.listings.On("ListHousing", mock.Anything, false).Return([]domain.Housing{}, nil).Once()

		rr := serve(m.handler(), newRequest(http.MethodGet, "/housing", "", false))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"housing":[]}`, rr.Body.String())
		m.assertExpectations(t)
	})

	t.Run("Malformed flag", func(t *testing.T) {
		m := newServerMocks()

		rr := serve(m.handler(), newRequest(http.MethodGet, "/housing?available=nope", "", false))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"code":"INVALID_REQUEST"`)
		assert.Contains(t, rr.Body.String(), "invalid available")
		m.assertExpectations(t)
	})

	t.Run("Token is not checked on public reads", func(t *testing.T) {
		m := newServerMocks()
		m.listings.On("GetJob", mock.Anything, int64(4)).Return(&domain.Job{ID: 4, NGOID: 1, Deadline: testTime}, nil).Once()

		rr := serve(m.handler(), newRequest(http.MethodGet, "/jobs/4", "", true))

		assert.Equal(t, http.StatusOK, rr.Code)
		m.tokens.AssertNotCalled(t, "Parse", mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("Unknown housing", func(t *testing.T) {
		m := newServerMocks()
		m.listings.On("GetHousing", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

		rr := serve(m.handler(), newRequest(http.MethodGet, "/housing/99", "", false))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"resource not found"}}`, rr.Body.String())
		m.assertExpectations(t)
	})

	t.Run("Writes need a token", func(t *testing.T) {
		m := newServerMocks()

		rr := serve(m.handler(), newRequest(http.MethodDelete, "/housing/5", "", false))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		m.listings.AssertNotCalled(t, "DeleteHousing", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestServer_DeleteJob(t *testing.T) {
	m := newServerMocks()
	m.signedInAs(ngoActor)
	m.listings.On("DeleteJob", mock.Anything, ngoActor, int64(4)).Return(nil).Once()

	rr := serve(m.handler(), newRequest(http.MethodDelete, "/jobs/4", "", true))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
	m.assertExpectations(t)
}

func TestServer_GetApplicationEvents(t *testing.T) {
	m := newServerMocks()
	m.signedInAs(refugeeActor)
	m.jobApps.On("History", mock.Anything, refugeeActor, int64(3)).Return([]domain.ApplicationEvent{{
		ID:            1,
		Kind:          domain.KindJob,
		ApplicationID: 3,
		ActorID:       "actor-ngo",
		FromStatus:    domain.StatusPending,
		ToStatus:      domain.StatusShortlisted,
		CreatedAt:     testTime,
	}}, nil).Once()

	rr := serve(m.handler(), newRequest(http.MethodGet, "/applications/jobs/3/events", "", true))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"events":[{"id":1,"kind":"job","application_id":3,"actor_id":"actor-ngo",
		"from_status":"pending","to_status":"shortlisted","created_at":"2025-01-02T03:04:05Z"}]}`, rr.Body.String())
	m.assertExpectations(t)
}
