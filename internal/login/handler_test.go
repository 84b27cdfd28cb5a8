/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package login

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/openportal/gate/internal/authenticator"
	"github.com/openportal/gate/internal/challenge"
	"github.com/openportal/gate/internal/notification"
	"github.com/openportal/gate/internal/system/config"
	"github.com/openportal/gate/internal/system/constants"
	"github.com/openportal/gate/internal/system/error/serviceerror"
	"github.com/openportal/gate/internal/verifier"
)

const testEntryURL = "https://localhost:8095/login"

// fakeVerifier records calls and returns canned results.
type fakeVerifier struct {
	loginErr    *serviceerror.ServiceError
	logoutErr   *serviceerror.ServiceError
	loginCreds  []verifier.Credentials
	loginOpts   []verifier.Options
	logoutCalls [][2]int
}

func (v *fakeVerifier) Login(credentials verifier.Credentials, opts verifier.Options) (
	*verifier.SessionToken, *serviceerror.ServiceError) {
	v.loginCreds = append(v.loginCreds, credentials)
	v.loginOpts = append(v.loginOpts, opts)
	if v.loginErr != nil {
		return nil, v.loginErr
	}
	return &verifier.SessionToken{UserID: 7, Username: credentials["username"], IssuedAt: time.Now()}, nil
}

func (v *fakeVerifier) Logout(userID int, clientScope int) *serviceerror.ServiceError {
	v.logoutCalls = append(v.logoutCalls, [2]int{userID, clientScope})
	return v.logoutErr
}

// fakeNotificationStore is an in-memory mailbox.
type fakeNotificationStore struct {
	queued  []notification.Message
	drained bool
}

func (s *fakeNotificationStore) Enqueue(w http.ResponseWriter, r *http.Request, msg notification.Message) error {
	s.queued = append(s.queued, msg)
	return nil
}

func (s *fakeNotificationStore) DrainAll(w http.ResponseWriter, r *http.Request) []notification.Message {
	s.drained = true
	messages := s.queued
	s.queued = nil
	return messages
}

func (s *fakeNotificationStore) Any(r *http.Request) bool {
	return len(s.queued) > 0
}

// fakeSessionManager records session state writes.
type fakeSessionManager struct {
	state map[string]string
}

func (m *fakeSessionManager) EnsureSession(w http.ResponseWriter, r *http.Request) string {
	return "test-session"
}

func (m *fakeSessionManager) SetState(sessionID, key, value string) {
	if m.state == nil {
		m.state = make(map[string]string)
	}
	m.state[key] = value
}

func (m *fakeSessionManager) GetState(sessionID, key string) (string, bool) {
	value, ok := m.state[key]
	return value, ok
}

// fakeAggregator returns canned factors.
type fakeAggregator struct {
	factors []challenge.Factor
	err     error
}

func (a *fakeAggregator) Collect() ([]challenge.Factor, error) {
	return a.factors, a.err
}

// fakeRenderer records what was rendered, or fails on demand.
type fakeRenderer struct {
	loginData   *LoginPageData
	factorsData *FactorsPageData
	err         error
}

func (r *fakeRenderer) RenderLogin(w http.ResponseWriter, data *LoginPageData) error {
	if r.err != nil {
		return r.err
	}
	r.loginData = data
	w.WriteHeader(http.StatusOK)
	return nil
}

func (r *fakeRenderer) RenderFactors(w http.ResponseWriter, data *FactorsPageData) error {
	if r.err != nil {
		return r.err
	}
	r.factorsData = data
	w.WriteHeader(http.StatusOK)
	return nil
}

// countingFactory counts strategy constructions.
type countingFactory struct {
	strategy authenticator.Strategy
	err      error
	count    int
}

func (f *countingFactory) new(desc authenticator.Descriptor) (authenticator.Strategy, error) {
	f.count++
	if f.err != nil {
		return nil, f.err
	}
	return f.strategy, nil
}

// plainStrategy has no display or login capability.
type plainStrategy struct {
	name string
}

func (s *plainStrategy) Name() string {
	return s.name
}

// customFormStrategy renders its own login UI.
type customFormStrategy struct {
	name string
	err  error
}

func (s *customFormStrategy) Name() string {
	return s.name
}

func (s *customFormStrategy) Display(w http.ResponseWriter, r *http.Request, returnValue string) error {
	if s.err != nil {
		return s.err
	}
	fmt.Fprintf(w, "custom-form:%s:%s", s.name, returnValue)
	return nil
}

// delegatingStrategy handles the login hook and may pin a return URL.
type delegatingStrategy struct {
	name        string
	returnURL   string
	credentials map[string]string
}

func (s *delegatingStrategy) Name() string {
	return s.name
}

func (s *delegatingStrategy) Login(credentials map[string]string) (*authenticator.LoginResult, error) {
	s.credentials = credentials
	return &authenticator.LoginResult{ReturnURL: s.returnURL}, nil
}

type LoginHandlerTestSuite struct {
	suite.Suite
	registry      *authenticator.Registry
	verifier      *fakeVerifier
	notifications *fakeNotificationStore
	sessions      *fakeSessionManager
	challenges    *fakeAggregator
	renderer      *fakeRenderer
}

func TestLoginHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoginHandlerTestSuite))
}

func (suite *LoginHandlerTestSuite) SetupTest() {
	config.ResetGateRuntime()
	cfg := &config.Config{}
	cfg.GateClient.BaseURL = "https://localhost:8095"
	cfg.Login.EntryPath = "/login"
	err := config.InitializeGateRuntime(suite.T().TempDir(), cfg)
	assert.NoError(suite.T(), err)

	suite.registry = authenticator.NewRegistry(nil)
	suite.verifier = &fakeVerifier{}
	suite.notifications = &fakeNotificationStore{}
	suite.sessions = &fakeSessionManager{}
	suite.challenges = &fakeAggregator{}
	suite.renderer = &fakeRenderer{}
}

func (suite *LoginHandlerTestSuite) TearDownTest() {
	config.ResetGateRuntime()
}

func (suite *LoginHandlerTestSuite) handler() *LoginHandler {
	return NewLoginHandler(suite.registry, suite.verifier, suite.notifications,
		suite.sessions, suite.challenges, suite.renderer)
}

func newFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeFormURLEncoded)
	return req
}

func (suite *LoginHandlerTestSuite) TestDisplayRendersDefaultPage() {
	req := httptest.NewRequest("GET", "/login", nil)
	rec := httptest.NewRecorder()

	suite.handler().HandleDisplayRequest(rec, req)

	assert.NotNil(suite.T(), suite.renderer.loginData)
	assert.Equal(suite.T(), testEntryURL, suite.renderer.loginData.EntryURL)
	assert.Empty(suite.T(), suite.renderer.loginData.Notifications)
	assert.False(suite.T(), suite.notifications.drained)
}

func (suite *LoginHandlerTestSuite) TestDisplayDrainsQueuedNotifications() {
	suite.notifications.queued = []notification.Message{
		{Kind: notification.KindError, Text: "bad credentials"},
		{Kind: notification.KindInfo, Text: "try again"},
	}

	req := httptest.NewRequest("GET", "/login", nil)
	rec := httptest.NewRecorder()

	suite.handler().HandleDisplayRequest(rec, req)

	assert.True(suite.T(), suite.notifications.drained)
	assert.NotNil(suite.T(), suite.renderer.loginData)
	assert.Len(suite.T(), suite.renderer.loginData.Notifications, 2)
	assert.Equal(suite.T(), "bad credentials", suite.renderer.loginData.Notifications[0].Text)
	assert.Empty(suite.T(), suite.notifications.queued)
}

func (suite *LoginHandlerTestSuite) TestDisplayDelegatesToMatchingAuthenticator() {
	factory := &countingFactory{strategy: &customFormStrategy{name: "sso"}}
	suite.registry = authenticator.NewRegistry([]authenticator.Descriptor{
		{Type: authenticator.TypeAuthentication, Name: "sso",
			Params: map[string]any{authenticator.ParamAdminLogin: true}},
	})
	suite.registry.Register(authenticator.TypeAuthentication, "sso", factory.new)

	returnValue := base64.StdEncoding.EncodeToString([]byte("/administrator"))
	req := httptest.NewRequest("GET", "/login?authenticator=sso&return="+url.QueryEscape(returnValue), nil)
	rec := httptest.NewRecorder()

	suite.handler().HandleDisplayRequest(rec, req)

	assert.Equal(suite.T(), "custom-form:sso:"+returnValue, rec.Body.String())
	assert.Nil(suite.T(), suite.renderer.loginData)
	assert.False(suite.T(), suite.notifications.drained)
}

func (suite *LoginHandlerTestSuite) TestDisplayScansEveryEligibleDescriptor() {
	first := &countingFactory{strategy: &plainStrategy{name: "password"}}
	second := &countingFactory{strategy: &plainStrategy{name: "ldap"}}
	third := &countingFactory{strategy: &plainStrategy{name: "token"}}
	suite.registry = authenticator.NewRegistry([]authenticator.Descriptor{
		{Type: authenticator.TypeAuthentication, Name: "password",
			Params: map[string]any{authenticator.ParamAdminLogin: true}},
		{Type: authenticator.TypeAuthentication, Name: "ldap",
			Params: map[string]any{authenticator.ParamAdminLogin: true}},
		{Type: authenticator.TypeAuthentication, Name: "token",
			Params: map[string]any{authenticator.ParamAdminLogin: true}},
	})
	suite.registry.Register(authenticator.TypeAuthentication, "password", first.new)
	suite.registry.Register(authenticator.TypeAuthentication, "ldap", second.new)
	suite.registry.Register(authenticator.TypeAuthentication, "token", third.new)

	req := httptest.NewRequest("GET", "/login?authenticator=token", nil)
	rec := httptest.NewRecorder()

	suite.handler().HandleDisplayRequest(rec, req)

	// Every eligible descriptor is constructed, mismatches included.
	assert.Equal(suite.T(), 1, first.count)
	assert.Equal(suite.T(), 1, second.count)
	assert.Equal(suite.T(), 1, third.count)
	// The match has no display capability, so the default page still renders.
	assert.NotNil(suite.T(), suite.renderer.loginData)
}

func (suite *LoginHandlerTestSuite) TestDisplayUnknownAuthenticatorFallsBack() {
	factory := &countingFactory{strategy: &customFormStrategy{name: "sso"}}
	suite.registry = authenticator.NewRegistry([]authenticator.Descriptor{
		{Type: authenticator.TypeAuthentication, Name: "sso",
			Params: map[string]any{authenticator.ParamAdminLogin: true}},
	})
	suite.registry.Register(authenticator.TypeAuthentication, "sso", factory.new)

	req := httptest.NewRequest("GET", "/login?authenticator=nonexistent", nil)
	rec := httptest.NewRecorder()

	suite.handler().HandleDisplayRequest(rec, req)

	assert.Equal(suite.T(), 1, factory.count)
	assert.NotNil(suite.T(), suite.renderer.loginData)
}

func (suite *LoginHandlerTestSuite) TestDisplaySkipsNonEligibleDescriptors() {
	eligible := &countingFactory{strategy: &plainStrategy{name: "password"}}
	ineligible := &countingFactory{strategy: &plainStrategy{name: "profile"}}
	suite.registry = authenticator.NewRegistry([]authenticator.Descriptor{
		{Type: authenticator.TypeAuthentication, Name: "password",
			Params: map[string]any{authenticator.ParamAdminLogin: true}},
		{Type: authenticator.TypeAuthentication, Name: "profile",
			Params: map[string]any{authenticator.ParamAdminLogin: false}},
	})
	suite.registry.Register(authenticator.TypeAuthentication, "password", eligible.new)
	suite.registry.Register(authenticator.TypeAuthentication, "profile", ineligible.new)

	req := httptest.NewRequest("GET", "/login", nil)
	rec := httptest.NewRecorder()

	suite.handler().HandleDisplayRequest(rec, req)

	assert.Equal(suite.T(), 1, eligible.count)
	assert.Equal(suite.T(), 0, ineligible.count)
}

func (suite *LoginHandlerTestSuite) TestDisplayStrategyConstructionFailureIsFatal() {
	factory := &countingFactory{err: errors.New("bad wiring")}
	suite.registry = authenticator.NewRegistry([]authenticator.Descriptor{
		{Type: authenticator.TypeAuthentication, Name: "sso",
			Params: map[string]any{authenticator.ParamAdminLogin: true}},
	})
	suite.registry.Register(authenticator.TypeAuthentication, "sso", factory.new)

	req := httptest.NewRequest("GET", "/login", nil)
	rec := httptest.NewRecorder()

	suite.handler().HandleDisplayRequest(rec, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)
	assert.Nil(suite.T(), suite.renderer.loginData)
}

func (suite *LoginHandlerTestSuite) TestDisplayRenderFailureReturnsServerError() {
	suite.renderer.err = errors.New("template exploded")

	req := httptest.NewRequest("GET", "/login", nil)
	rec := httptest.NewRecorder()

	suite.handler().HandleDisplayRequest(rec, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)
}

func (suite *LoginHandlerTestSuite) TestLoginSuccessRedirectsAndPersistsLocale() {
	req := newFormRequest("/login", url.Values{
		"username": {"admin"},
		"password": {"s3cr3t"},
		"lang":     {"en_US!!"},
	})
	rec := httptest.NewRecorder()

	suite.handler().HandleLoginRequest(rec, req)

	assert.Equal(suite.T(), http.StatusFound, rec.Code)
	assert.Equal(suite.T(), testEntryURL, rec.Header().Get("Location"))
	assert.Equal(suite.T(), "enUS", suite.sessions.state["application.lang"])
	assert.Empty(suite.T(), suite.notifications.queued)
}

func (suite *LoginHandlerTestSuite) TestLoginWithoutLocaleOverwritesStalePreference() {
	suite.sessions.state = map[string]string{"application.lang": "fr"}

	req := newFormRequest("/login", url.Values{
		"username": {"admin"},
		"password": {"s3cr3t"},
	})
	rec := httptest.NewRecorder()

	suite.handler().HandleLoginRequest(rec, req)

	assert.Equal(suite.T(), http.StatusFound, rec.Code)
	assert.Equal(suite.T(), "", suite.sessions.state["application.lang"])
}

func (suite *LoginHandlerTestSuite) TestLoginBuildsVerifierOptions() {
	req := newFormRequest("/login", url.Values{
		"username": {"admin"},
		"password": {"s3cr3t"},
	})
	rec := httptest.NewRecorder()

	suite.handler().HandleLoginRequest(rec, req)

	assert.Len(suite.T(), suite.verifier.loginOpts, 1)
	opts := suite.verifier.loginOpts[0]
	assert.Equal(suite.T(), ActionAdminLogin, opts.Action)
	assert.Equal(suite.T(), GroupPublicBackend, opts.Group)
	assert.False(suite.T(), opts.Autoregister)
	assert.Equal(suite.T(), testEntryURL, opts.EntryURL)
	assert.Equal(suite.T(), "", opts.AuthenticatorName)

	credentials := suite.verifier.loginCreds[0]
	assert.Equal(suite.T(), "admin", credentials["username"])
	assert.Equal(suite.T(), "s3cr3t", credentials["password"])
}

func (suite *LoginHandlerTestSuite) TestLoginFailureEnqueuesAndRedirects() {
	suite.verifier.loginErr = &serviceerror.ServiceError{
		Code:             "GATE-VRF-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid credentials",
		ErrorDescription: "Username or password is incorrect",
	}

	req := newFormRequest("/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})
	rec := httptest.NewRecorder()

	suite.handler().HandleLoginRequest(rec, req)

	assert.Equal(suite.T(), http.StatusFound, rec.Code)
	assert.Equal(suite.T(), testEntryURL, rec.Header().Get("Location"))
	assert.Nil(suite.T(), suite.renderer.loginData)
	assert.Len(suite.T(), suite.notifications.queued, 1)
	assert.Equal(suite.T(), notification.KindError, suite.notifications.queued[0].Kind)
	assert.Equal(suite.T(), "Username or password is incorrect", suite.notifications.queued[0].Text)
	assert.Empty(suite.T(), suite.sessions.state)
}

func (suite *LoginHandlerTestSuite) TestLoginHonorsRequestedReturnURL() {
	encoded := base64.StdEncoding.EncodeToString([]byte("https://localhost:8095/administrator"))
	req := newFormRequest("/login", url.Values{
		"username": {"admin"},
		"password": {"s3cr3t"},
		"return":   {encoded},
	})
	rec := httptest.NewRecorder()

	suite.handler().HandleLoginRequest(rec, req)

	assert.Equal(suite.T(), http.StatusFound, rec.Code)
	assert.Equal(suite.T(), "https://localhost:8095/administrator", rec.Header().Get("Location"))
}

func (suite *LoginHandlerTestSuite) TestLoginDelegationOverridesReturnURL() {
	strategy := &delegatingStrategy{name: "sso", returnURL: "https://sso.example.com/landing"}
	factory := &countingFactory{strategy: strategy}
	suite.registry = authenticator.NewRegistry([]authenticator.Descriptor{
		{Type: authenticator.TypeAuthentication, Name: "sso"},
	})
	suite.registry.Register(authenticator.TypeAuthentication, "sso", factory.new)

	req := newFormRequest("/login", url.Values{
		"username":      {"admin"},
		"password":      {"s3cr3t"},
		"authenticator": {"sso"},
	})
	rec := httptest.NewRecorder()

	suite.handler().HandleLoginRequest(rec, req)

	// The delegated hook saw the credentials before the verifier ran.
	assert.Equal(suite.T(), "admin", strategy.credentials["username"])
	assert.Len(suite.T(), suite.verifier.loginCreds, 1)
	assert.Equal(suite.T(), "sso", suite.verifier.loginOpts[0].AuthenticatorName)
	assert.Equal(suite.T(), http.StatusFound, rec.Code)
	assert.Equal(suite.T(), "https://sso.example.com/landing", rec.Header().Get("Location"))
}

func (suite *LoginHandlerTestSuite) TestLoginDelegationStopsAtFirstNameMatch() {
	factory := &countingFactory{strategy: &plainStrategy{name: "sso"}}
	suite.registry = authenticator.NewRegistry([]authenticator.Descriptor{
		{Type: authenticator.TypeAuthentication, Name: "sso"},
		{Type: authenticator.TypeAuthentication, Name: "sso"},
	})
	suite.registry.Register(authenticator.TypeAuthentication, "sso", factory.new)

	req := newFormRequest("/login", url.Values{
		"username":      {"admin"},
		"password":      {"s3cr3t"},
		"authenticator": {"sso"},
	})
	rec := httptest.NewRecorder()

	suite.handler().HandleLoginRequest(rec, req)

	// The first match ends the scan; a full scan over the two identically
	// named descriptors would construct the strategy twice.
	assert.Equal(suite.T(), 1, factory.count)
	assert.Equal(suite.T(), testEntryURL, rec.Header().Get("Location"))
}

func (suite *LoginHandlerTestSuite) TestLogoutCurrentSessionUser() {
	req := httptest.NewRequest("GET", "/logout", nil)
	rec := httptest.NewRecorder()

	suite.handler().HandleLogoutRequest(rec, req)

	assert.Equal(suite.T(), [][2]int{{0, 1}}, suite.verifier.logoutCalls)
	assert.Equal(suite.T(), http.StatusFound, rec.Code)
	assert.Equal(suite.T(), testEntryURL, rec.Header().Get("Location"))
}

func (suite *LoginHandlerTestSuite) TestLogoutNamedUser() {
	req := httptest.NewRequest("GET", "/logout?uid=42", nil)
	rec := httptest.NewRecorder()

	suite.handler().HandleLogoutRequest(rec, req)

	assert.Equal(suite.T(), [][2]int{{42, 0}}, suite.verifier.logoutCalls)
	assert.Equal(suite.T(), http.StatusFound, rec.Code)
}

func (suite *LoginHandlerTestSuite) TestLogoutHonorsRequestedReturnURL() {
	encoded := base64.StdEncoding.EncodeToString([]byte("https://localhost:8095/goodbye"))
	req := httptest.NewRequest("GET", "/logout?return="+url.QueryEscape(encoded), nil)
	rec := httptest.NewRecorder()

	suite.handler().HandleLogoutRequest(rec, req)

	assert.Equal(suite.T(), http.StatusFound, rec.Code)
	assert.Equal(suite.T(), "https://localhost:8095/goodbye", rec.Header().Get("Location"))
}

func (suite *LoginHandlerTestSuite) TestLogoutFailureFallsThroughToLoginPage() {
	suite.verifier.logoutErr = &serviceerror.ServiceError{
		Code:             "GATE-VRF-1500",
		Type:             serviceerror.ServerErrorType,
		Error:            "Verifier unavailable",
		ErrorDescription: "Something went wrong",
	}

	req := httptest.NewRequest("GET", "/logout", nil)
	rec := httptest.NewRecorder()

	suite.handler().HandleLogoutRequest(rec, req)

	// No redirect; the default login page is rendered instead.
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Empty(suite.T(), rec.Header().Get("Location"))
	assert.NotNil(suite.T(), suite.renderer.loginData)
}

func (suite *LoginHandlerTestSuite) TestFactorsRendersCollectedFragments() {
	suite.challenges.factors = []challenge.Factor{"<otp>", "<codes>"}

	req := httptest.NewRequest("GET", "/login/factors", nil)
	rec := httptest.NewRecorder()

	suite.handler().HandleFactorsRequest(rec, req)

	assert.NotNil(suite.T(), suite.renderer.factorsData)
	assert.Equal(suite.T(), []challenge.Factor{"<otp>", "<codes>"}, suite.renderer.factorsData.Factors)
}

func (suite *LoginHandlerTestSuite) TestFactorsCollectionFailure() {
	suite.challenges.err = errors.New("provider unavailable")

	req := httptest.NewRequest("GET", "/login/factors", nil)
	rec := httptest.NewRecorder()

	suite.handler().HandleFactorsRequest(rec, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)
	assert.Nil(suite.T(), suite.renderer.factorsData)
}
