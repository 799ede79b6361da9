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

// Command server runs the Halcyon authorization server.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/halcyonauth/halcyon/internal/client"
	"github.com/halcyonauth/halcyon/internal/oauth/jwt"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/constants"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/credentials"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/flow"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/granthandlers"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/granttype"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/introspect"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/prompt"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/redirect"
	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/token"
	"github.com/halcyonauth/halcyon/internal/oauth/oidc"
	"github.com/halcyonauth/halcyon/internal/oauth/session"
	"github.com/halcyonauth/halcyon/internal/system/config"
	"github.com/halcyonauth/halcyon/internal/system/log"
	"github.com/halcyonauth/halcyon/internal/user"
)

const loggerComponentName = "Server"

func main() {
	configPath := flag.String("config", "conf/halcyon.yaml", "path to the server configuration file")
	flag.Parse()

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", log.Error(err))
	}

	halcyonHome, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to determine working directory", log.Error(err))
	}
	if err := config.InitializeHalcyonRuntime(halcyonHome, cfg); err != nil {
		logger.Fatal("Failed to initialize runtime", log.Error(err))
	}

	router, err := buildRouter()
	if err != nil {
		logger.Fatal("Failed to wire server", log.Error(err))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	logger.Info("Starting server", log.String("address", addr))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Server terminated", log.Error(err))
	}
}

// buildRouter wires the services and registers the OAuth2 endpoints.
func buildRouter() (*mux.Router, error) {
	cfg := config.GetHalcyonRuntime().Config

	clientStore := client.NewInMemoryStore()
	for _, c := range cfg.Clients {
		clientType := client.Type(c.Type)
		if clientType == "" {
			clientType = client.TypeConfidential
		}
		clientStore.AddClient(client.Client{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURIs: c.RedirectURIs,
			Type:         clientType,
		})
	}

	userStore := user.NewInMemoryStore()
	for _, u := range cfg.Users {
		hashed, err := user.HashPassword(u.Password)
		if err != nil {
			return nil, err
		}
		userStore.AddUser(user.User{
			ID:             u.ID,
			Username:       u.Username,
			HashedPassword: hashed,
		})
	}
	authService := user.NewAuthenticationService(userStore)

	jwtService, err := jwt.NewService()
	if err != nil {
		return nil, err
	}
	tokenService := token.NewTokenService(jwtService)
	idTokenGenerator := oidc.NewIDTokenGenerator(jwtService)
	authzCodeManager := authz.NewAuthorizationCodeManager()

	flowProvider, err := flow.NewFlowHandlerProvider([]flow.RegisteredFlowHandler{
		{GrantType: constants.GrantTypeAuthorizationCode,
			Handler: flow.NewAuthorizationCodeFlowHandler(authzCodeManager)},
		{GrantType: constants.GrantTypeImplicit,
			Handler: flow.NewImplicitFlowHandler(tokenService)},
		{GrantType: constants.GrantTypeMultiple,
			Handler: flow.NewHybridFlowHandler(authzCodeManager, tokenService, idTokenGenerator)},
	})
	if err != nil {
		return nil, err
	}

	redirectProvider, err := redirect.NewRedirectURLProvider([]redirect.RedirectURLCreationServiceInterface{
		redirect.NewAuthorizationCodeRedirectURLService(),
		redirect.NewImplicitRedirectURLService(),
		redirect.NewMultipleResponseTypesRedirectURLService(),
	})
	if err != nil {
		return nil, err
	}

	grantProvider, err := granthandlers.NewGrantHandlerProvider([]granthandlers.RegisteredGrantHandler{
		{GrantType: constants.GrantTypeAuthorizationCode,
			Handler: granthandlers.NewAuthorizationCodeGrantHandler(authzCodeManager, tokenService, userStore)},
		{GrantType: constants.GrantTypePassword,
			Handler: granthandlers.NewPasswordGrantHandler(authService, tokenService)},
	})
	if err != nil {
		return nil, err
	}

	grantTypeResolver := granttype.NewResolver()
	authzHandler := authz.NewAuthorizationHandler(
		authz.NewAuthorizationValidator(clientStore, grantTypeResolver),
		grantTypeResolver,
		prompt.NewPromptHandlerProvider(),
		flowProvider,
		redirectProvider,
		session.NewSessionDataStore(),
		session.NewRememberedAccountsStore(),
		authService,
		userStore,
	)

	credentialsResolver := credentials.NewChainResolver()
	tokenHandler := token.NewTokenHandler(clientStore, credentialsResolver, grantProvider)
	introspectionHandler := introspect.NewHandler(clientStore, credentialsResolver,
		introspect.NewService(jwtService))

	router := mux.NewRouter()
	router.HandleFunc(constants.OAuth2AuthorizationEndpoint,
		authzHandler.HandleAuthorizeRequest).Methods(http.MethodGet)
	router.HandleFunc(constants.OAuth2LoginEndpoint,
		authzHandler.HandleLoginPageRequest).Methods(http.MethodGet)
	router.HandleFunc(constants.OAuth2LoginEndpoint,
		authzHandler.HandleLoginRequest).Methods(http.MethodPost)
	router.HandleFunc(constants.OAuth2TokenEndpoint,
		tokenHandler.HandleTokenRequest).Methods(http.MethodPost)
	router.HandleFunc(constants.OAuth2IntrospectionEndpoint,
		introspectionHandler.HandleIntrospectionRequest).Methods(http.MethodPost)

	return router, nil
}
