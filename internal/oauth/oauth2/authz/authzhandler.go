/*
 * Copyright (c) 2026, Halcyon Project.
 *
 * Halcyon Project licenses this file to you under the Apache License,
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

package authz

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/flow"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/granttype"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/model"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/prompt"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/redirect"
	"github.com/halcyonauth/halcyon/internal/oauth/session"
	"github.com/halcyonauth/halcyon/internal/system/log"
	"github.com/halcyonauth/halcyon/internal/system/utils"
	"github.com/halcyonauth/halcyon/internal/user"
)

const authzHandlerLoggerComponentName = "AuthorizationHandler"

// browserSessionCookie identifies the browser session carrying remembered accounts.
const browserSessionCookie = "halcyon_session"

// AuthorizationHandler serves the authorization and login endpoints.
type AuthorizationHandler struct {
	Validator          AuthorizationValidatorInterface
	GrantTypeResolver  granttype.ResolverInterface
	PromptProvider     prompt.PromptHandlerProviderInterface
	FlowProvider       flow.FlowHandlerProviderInterface
	RedirectProvider   redirect.RedirectURLProviderInterface
	SessionStore       session.SessionDataStoreInterface
	RememberedAccounts session.RememberedAccountsStoreInterface
	AuthService        user.AuthenticationServiceInterface
	UserStore          user.StoreInterface
}

// NewAuthorizationHandler creates a new authorization handler.
func NewAuthorizationHandler(validator AuthorizationValidatorInterface,
	grantTypeResolver granttype.ResolverInterface,
	promptProvider prompt.PromptHandlerProviderInterface,
	flowProvider flow.FlowHandlerProviderInterface,
	redirectProvider redirect.RedirectURLProviderInterface,
	sessionStore session.SessionDataStoreInterface,
	rememberedAccounts session.RememberedAccountsStoreInterface,
	authService user.AuthenticationServiceInterface,
	userStore user.StoreInterface) *AuthorizationHandler {
	return &AuthorizationHandler{
		Validator:          validator,
		GrantTypeResolver:  grantTypeResolver,
		PromptProvider:     promptProvider,
		FlowProvider:       flowProvider,
		RedirectProvider:   redirectProvider,
		SessionStore:       sessionStore,
		RememberedAccounts: rememberedAccounts,
		AuthService:        authService,
		UserStore:          userStore,
	}
}

// HandleAuthorizeRequest serves GET /oauth2/authorize. It validates the
// request, resolves its grant type and decides what interaction the user owes.
func (h *AuthorizationHandler) HandleAuthorizeRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(
		log.String(log.LoggerKeyComponentName, authzHandlerLoggerComponentName))

	request := parseAuthorizationRequest(r)

	if errResp, redirectSafe := h.Validator.ValidateInitialAuthorizationRequest(request); errResp != nil {
		if redirectSafe {
			h.redirectError(w, r, request, errResp)
			return
		}
		utils.WriteJSONError(w, errResp.Error, errResp.ErrorDescription, http.StatusBadRequest, nil)
		return
	}

	request.GrantType = h.GrantTypeResolver.ResolveGrantType(request.ResponseTypes)

	promptType := request.Prompt
	if promptType == "" {
		promptType = constants.PromptTypeCombined
	}
	promptHandler, ok := h.PromptProvider.GetPromptHandler(promptType)
	if !ok {
		h.redirectError(w, r, request, &model.ErrorResponse{
			Error:            constants.ErrorInvalidRequest,
			ErrorDescription: "Invalid prompt parameter",
		})
		return
	}

	browserSessionID := h.ensureBrowserSession(w, r)
	remembered := h.RememberedAccounts.GetRememberedAccounts(browserSessionID)

	interaction, err := promptHandler.HandlePrompt(request, remembered)
	if err != nil {
		logger.Error("Failed to resolve prompt", log.Error(err))
		utils.WriteJSONError(w, constants.ErrorServerError, "Failed to process authorization request",
			http.StatusInternalServerError, nil)
		return
	}

	switch interaction.Type {
	case prompt.InteractionTypeRedirect:
		http.Redirect(w, r, interaction.RedirectURL, http.StatusFound)
	case prompt.InteractionTypeAuthenticated:
		authenticatedUser, ok := h.UserStore.GetUserByID(interaction.AuthenticatedUser.UserID)
		if !ok {
			sessionKey := h.SessionStore.AddSession(request)
			h.redirectToLogin(w, r, sessionKey)
			return
		}
		h.completeFlow(w, r, request, authenticatedUser, browserSessionID)
	default:
		sessionKey := h.SessionStore.AddSession(request)
		h.redirectToLogin(w, r, sessionKey)
	}
}

// loginPage is the minimal login form served to browsers.
const loginPage = `<!DOCTYPE html>
<html>
<head><title>Sign in</title></head>
<body>
<form method="post" action="` + constants.OAuth2LoginEndpoint + `">
<input type="hidden" name="` + constants.SessionDataKey + `" value="%s">
<label>Username <input type="text" name="` + constants.Username + `"></label>
<label>Password <input type="password" name="` + constants.Password + `"></label>
<button type="submit">Sign in</button>
</form>
</body>
</html>`

// HandleLoginPageRequest serves GET /oauth2/login with the login form for the
// parked authorization request.
func (h *AuthorizationHandler) HandleLoginPageRequest(w http.ResponseWriter, r *http.Request) {
	sessionKey := r.URL.Query().Get(constants.SessionDataKey)
	if _, ok := h.SessionStore.GetSession(sessionKey); !ok {
		utils.WriteJSONError(w, constants.ErrorInvalidRequest, "Unknown or expired session",
			http.StatusBadRequest, nil)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, loginPage, template.HTMLEscapeString(sessionKey))
}

// HandleLoginRequest serves POST /oauth2/login. It authenticates the user and
// completes the parked authorization request.
func (h *AuthorizationHandler) HandleLoginRequest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.WriteJSONError(w, constants.ErrorInvalidRequest, "Failed to parse request body",
			http.StatusBadRequest, nil)
		return
	}

	sessionKey := r.PostFormValue(constants.SessionDataKey)
	sessionData, ok := h.SessionStore.GetSession(sessionKey)
	if !ok {
		utils.WriteJSONError(w, constants.ErrorInvalidRequest, "Unknown or expired session",
			http.StatusBadRequest, nil)
		return
	}

	authenticatedUser, err := h.AuthService.Authenticate(r.PostFormValue(constants.Username),
		r.PostFormValue(constants.Password))
	if err != nil {
		utils.WriteJSONError(w, constants.ErrorAccessDenied, "Invalid username or password",
			http.StatusUnauthorized, nil)
		return
	}

	h.SessionStore.ClearSession(sessionKey)

	browserSessionID := h.ensureBrowserSession(w, r)
	h.RememberedAccounts.RememberAccount(browserSessionID, session.RememberedAccount{
		UserID:   authenticatedUser.ID,
		Username: authenticatedUser.Username,
	})

	h.completeFlow(w, r, sessionData.AuthorizationRequest, authenticatedUser, browserSessionID)
}

// completeFlow runs the resolved flow for the authenticated user and sends
// the user agent back to the client with the result.
func (h *AuthorizationHandler) completeFlow(w http.ResponseWriter, r *http.Request,
	request *model.AuthorizationRequest, authenticatedUser *user.User, browserSessionID string) {
	logger := log.GetLogger().With(
		log.String(log.LoggerKeyComponentName, authzHandlerLoggerComponentName))

	flowHandler, ok := h.FlowProvider.GetFlowHandler(request.GrantType)
	if !ok {
		h.redirectError(w, r, request, &model.ErrorResponse{
			Error:            constants.ErrorUnsupportedResponseType,
			ErrorDescription: "No flow supports the requested response types",
		})
		return
	}

	issuedToken, errResp := flowHandler.HandleFlow(request, authenticatedUser)
	if errResp != nil {
		h.redirectError(w, r, request, errResp)
		return
	}

	redirectService, ok := h.RedirectProvider.GetRedirectURLCreationService(request.GrantType)
	if !ok {
		h.redirectError(w, r, request, &model.ErrorResponse{
			Error:            constants.ErrorServerError,
			ErrorDescription: "No redirect URL creation service for the grant type",
		})
		return
	}

	redirectURL, err := redirectService.CreateRedirectURL(request, issuedToken)
	if err != nil {
		logger.Error("Failed to build redirect URL", log.Error(err),
			log.String("clientID", request.ClientID))
		h.redirectError(w, r, request, &model.ErrorResponse{
			Error:            constants.ErrorServerError,
			ErrorDescription: "Failed to build redirect URL",
		})
		return
	}

	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// redirectError delivers a protocol error to the validated redirect URI,
// carrying the state when the client sent one.
func (h *AuthorizationHandler) redirectError(w http.ResponseWriter, r *http.Request,
	request *model.AuthorizationRequest, errResp *model.ErrorResponse) {
	queryParams := map[string]string{
		constants.Error: errResp.Error,
	}
	if errResp.ErrorDescription != "" {
		queryParams[constants.ErrorDescription] = errResp.ErrorDescription
	}
	if request.State != "" {
		queryParams[constants.State] = request.State
	}

	redirectURL, err := utils.GetURIWithQueryParams(request.RedirectURI, queryParams)
	if err != nil {
		utils.WriteJSONError(w, errResp.Error, errResp.ErrorDescription,
			http.StatusBadRequest, nil)
		return
	}
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// redirectToLogin sends the user agent to the login page with the session data key.
func (h *AuthorizationHandler) redirectToLogin(w http.ResponseWriter, r *http.Request,
	sessionKey string) {
	loginURL, err := utils.GetURIWithQueryParams(constants.OAuth2LoginEndpoint,
		map[string]string{constants.SessionDataKey: sessionKey})
	if err != nil {
		utils.WriteJSONError(w, constants.ErrorServerError, "Failed to build login URL",
			http.StatusInternalServerError, nil)
		return
	}
	http.Redirect(w, r, loginURL, http.StatusFound)
}

// ensureBrowserSession returns the browser session identifier, minting a new
// cookie when the request carries none.
func (h *AuthorizationHandler) ensureBrowserSession(w http.ResponseWriter,
	r *http.Request) string {
	if cookie, err := r.Cookie(browserSessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := utils.GenerateUUID()
	http.SetCookie(w, &http.Cookie{
		Name:     browserSessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessionID
}

// parseAuthorizationRequest builds the authorization request from the query parameters.
func parseAuthorizationRequest(r *http.Request) *model.AuthorizationRequest {
	query := r.URL.Query()

	var responseTypes []constants.ResponseType
	for _, value := range utils.ParseScopes(query.Get(constants.ResponseTypeParam)) {
		responseTypes = append(responseTypes, constants.ResponseType(value))
	}

	return &model.AuthorizationRequest{
		ClientID:      query.Get(constants.ClientID),
		ResponseTypes: responseTypes,
		RedirectURI:   query.Get(constants.RedirectURI),
		Scopes:        utils.ParseScopes(query.Get(constants.Scope)),
		State:         query.Get(constants.State),
		Prompt:        constants.PromptType(query.Get(constants.Prompt)),
	}
}
