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

// Package login implements the administrator login, logout and challenge
// entry points of the gate service.
package login

import (
	"net/http"

	"github.com/openportal/gate/internal/authenticator"
	"github.com/openportal/gate/internal/challenge"
	"github.com/openportal/gate/internal/notification"
	"github.com/openportal/gate/internal/session"
	"github.com/openportal/gate/internal/system/config"
	"github.com/openportal/gate/internal/system/log"
	"github.com/openportal/gate/internal/system/utils"
	"github.com/openportal/gate/internal/verifier"
)

// LoginHandler serves the login, logout and challenge collection requests.
type LoginHandler struct {
	registry      authenticator.RegistryInterface
	verifier      verifier.VerifierInterface
	notifications notification.StoreInterface
	sessions      session.ManagerInterface
	challenges    challenge.AggregatorInterface
	renderer      RendererInterface
}

// NewLoginHandler creates a login handler with the given collaborators.
func NewLoginHandler(registry authenticator.RegistryInterface, vrf verifier.VerifierInterface,
	notifications notification.StoreInterface, sessions session.ManagerInterface,
	challenges challenge.AggregatorInterface, renderer RendererInterface) *LoginHandler {
	if renderer == nil {
		renderer = NewTemplateRenderer()
	}
	return &LoginHandler{
		registry:      registry,
		verifier:      vrf,
		notifications: notifications,
		sessions:      sessions,
		challenges:    challenges,
		renderer:      renderer,
	}
}

// HandleDisplayRequest serves the login page. A specifically requested
// authenticator gets the chance to render its own login UI first; every
// admin-login capable authenticator is constructed during the scan, but only
// an exact name match acts. When none acts, the default page is rendered with
// any queued notifications drained into it.
func (h *LoginHandler) HandleDisplayRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginHandler"))

	requested := utils.RequestVarMethod(r, varAuthenticator, "")
	returnValue := utils.RequestVarBase64(r, varReturn, "")

	for _, desc := range h.registry.ListByType(authenticator.TypeAuthentication) {
		if !desc.ParamBool(authenticator.ParamAdminLogin) || !h.registry.HasStrategy(desc) {
			continue
		}

		strategy, err := h.registry.Instantiate(desc)
		if err != nil {
			logger.Error("Failed to construct authenticator strategy", log.Error(err),
				log.String(log.LoggerKeyAuthenticatorName, desc.Name))
			utils.WriteJSONError(w, ErrorStrategyFailure, http.StatusInternalServerError)
			return
		}
		if strategy.Name() != requested {
			continue
		}

		if displayer, ok := strategy.(authenticator.DisplayStrategy); ok {
			logger.Debug("Delegating login page rendering",
				log.String(log.LoggerKeyAuthenticatorName, strategy.Name()))
			if err := displayer.Display(w, r, returnValue); err != nil {
				logger.Error("Authenticator display failed", log.Error(err),
					log.String(log.LoggerKeyAuthenticatorName, strategy.Name()))
				utils.WriteJSONError(w, ErrorStrategyFailure, http.StatusInternalServerError)
			}
			return
		}
	}

	var messages []notification.Message
	if h.notifications.Any(r) {
		messages = h.notifications.DrainAll(w, r)
	}

	data := &LoginPageData{
		EntryURL:      defaultEntryURL(),
		ReturnValue:   returnValue,
		Notifications: messages,
	}
	if err := h.renderer.RenderLogin(w, data); err != nil {
		logger.Error("Failed to render login page", log.Error(err))
		utils.WriteJSONError(w, ErrorPageRenderFailure, http.StatusInternalServerError)
	}
}

// HandleLoginRequest drives a login attempt: optional delegation to a named
// authenticator, core verification, then a redirect to the resolved return
// URL regardless of outcome. Failures travel as queued notifications, not as
// a re-rendered form.
func (h *LoginHandler) HandleLoginRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginHandler"))

	requested := utils.RequestVarMethod(r, varAuthenticator, "")
	returnURL := utils.RequestVarBase64Decoded(r, varReturn, "")

	credentials := verifier.Credentials{
		"username": utils.RequestVarMethod(r, varUsername, ""),
		"password": utils.RequestVar(r, varPassword, ""),
	}
	if token := utils.RequestVar(r, varToken, ""); token != "" {
		credentials["token"] = token
	}

	// Delegation considers exactly one descriptor: the first exact name
	// match ends the scan whether or not the strategy can log in.
	if requested != "" {
		for _, desc := range h.registry.ListByType(authenticator.TypeAuthentication) {
			if desc.Name != requested {
				continue
			}

			if h.registry.HasStrategy(desc) {
				strategy, err := h.registry.Instantiate(desc)
				if err != nil {
					logger.Error("Failed to construct authenticator strategy", log.Error(err),
						log.String(log.LoggerKeyAuthenticatorName, desc.Name))
					utils.WriteJSONError(w, ErrorStrategyFailure, http.StatusInternalServerError)
					return
				}
				if delegate, ok := strategy.(authenticator.LoginStrategy); ok {
					result, err := delegate.Login(credentials)
					if err != nil {
						logger.Error("Delegated login hook failed", log.Error(err),
							log.String(log.LoggerKeyAuthenticatorName, desc.Name))
						utils.WriteJSONError(w, ErrorStrategyFailure, http.StatusInternalServerError)
						return
					}
					if result != nil && result.ReturnURL != "" {
						returnURL = result.ReturnURL
					}
				}
			}
			break
		}
	}

	if returnURL == "" {
		returnURL = defaultEntryURL()
	}

	options := verifier.Options{
		Action:            ActionAdminLogin,
		AuthenticatorName: requested,
		Group:             GroupPublicBackend,
		Autoregister:      false,
		EntryURL:          defaultEntryURL(),
	}

	if _, svcErr := h.verifier.Login(credentials, options); svcErr != nil {
		logger.Debug("Login attempt rejected", log.String("code", svcErr.Code))
		if err := h.notifications.Enqueue(w, r, notification.Message{
			Kind: notification.KindError,
			Text: svcErr.ErrorDescription,
		}); err != nil {
			logger.Error("Failed to enqueue login failure notification", log.Error(err))
		}
	} else {
		// The preference is overwritten even when the submission is empty so a
		// stale locale never survives a new login.
		lang := utils.SanitizeLocale(utils.RequestVar(r, varLang, ""))
		sessionID := h.sessions.EnsureSession(w, r)
		h.sessions.SetState(sessionID, session.StateKeyUILanguage, lang)
	}

	http.Redirect(w, r, returnURL, http.StatusFound)
}

// HandleLogoutRequest de-authenticates the current session user, or an
// explicitly named user when a uid variable is present. On success the
// request redirects to the resolved return URL; on failure it falls through
// to the default login page so the user sees a login prompt.
func (h *LoginHandler) HandleLogoutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginHandler"))

	userID := utils.RequestVarInt(r, varUserID, 0)
	clientScope := clientScopeAdmin
	if userID != 0 {
		clientScope = clientScopeSite
	}

	if svcErr := h.verifier.Logout(userID, clientScope); svcErr != nil {
		logger.Warn("Logout rejected by verifier", log.String("code", svcErr.Code))
		h.HandleDisplayRequest(w, r)
		return
	}

	returnURL := utils.RequestVarBase64Decoded(r, varReturn, "")
	if returnURL == "" {
		returnURL = defaultEntryURL()
	}
	http.Redirect(w, r, returnURL, http.StatusFound)
}

// HandleFactorsRequest collects the multi-factor challenge fragments from all
// registered providers and renders them in registration order. A single
// failing provider aborts the whole collection.
func (h *LoginHandler) HandleFactorsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LoginHandler"))

	factors, err := h.challenges.Collect()
	if err != nil {
		logger.Error("Challenge factor collection failed", log.Error(err))
		utils.WriteJSONError(w, ErrorChallengeCollectionFailure, http.StatusInternalServerError)
		return
	}

	if err := h.renderer.RenderFactors(w, &FactorsPageData{Factors: factors}); err != nil {
		logger.Error("Failed to render challenge factors", log.Error(err))
		utils.WriteJSONError(w, ErrorPageRenderFailure, http.StatusInternalServerError)
	}
}

// defaultEntryURL computes the fallback login endpoint from the runtime
// configuration.
func defaultEntryURL() string {
	cfg := config.GetGateRuntime().Config
	return cfg.GateClient.BaseURL + cfg.Login.EntryPath
}
