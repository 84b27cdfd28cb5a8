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
	"html/template"
	"net/http"

	"github.com/openportal/gate/internal/challenge"
	"github.com/openportal/gate/internal/notification"
	"github.com/openportal/gate/internal/system/constants"
)

// LoginPageData carries the data rendered into the default login page.
type LoginPageData struct {
	EntryURL      string
	ReturnValue   string
	Notifications []notification.Message
}

// FactorsPageData carries the collected challenge fragments for display.
type FactorsPageData struct {
	Factors []challenge.Factor
}

// RendererInterface defines the view surface for the login entry points.
type RendererInterface interface {
	// RenderLogin writes the default login page.
	RenderLogin(w http.ResponseWriter, data *LoginPageData) error
	// RenderFactors writes the multi-factor challenge page.
	RenderFactors(w http.ResponseWriter, data *FactorsPageData) error
}

const loginPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Administrator Login</title>
</head>
<body>
  <main class="login">
    {{range .Notifications}}
    <div class="notification notification-{{.Kind}}" role="alert">{{.Text}}</div>
    {{end}}
    <form method="post" action="{{.EntryURL}}">
      <label for="username">Username</label>
      <input type="text" id="username" name="username" autocomplete="username" autofocus>
      <label for="password">Password</label>
      <input type="password" id="password" name="password" autocomplete="current-password">
      <input type="hidden" name="return" value="{{.ReturnValue}}">
      <button type="submit">Log in</button>
    </form>
  </main>
</body>
</html>
`

const factorsPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Additional Verification</title>
</head>
<body>
  <main class="factors">
    {{range .Fragments}}
    <section class="factor">{{.}}</section>
    {{end}}
  </main>
</body>
</html>
`

// templateRenderer is the default html/template backed renderer.
type templateRenderer struct {
	loginTmpl   *template.Template
	factorsTmpl *template.Template
}

// NewTemplateRenderer creates the default login page renderer.
func NewTemplateRenderer() RendererInterface {
	return &templateRenderer{
		loginTmpl:   template.Must(template.New("login").Parse(loginPageTemplate)),
		factorsTmpl: template.Must(template.New("factors").Parse(factorsPageTemplate)),
	}
}

// RenderLogin writes the default login page.
func (tr *templateRenderer) RenderLogin(w http.ResponseWriter, data *LoginPageData) error {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeHTML)
	return tr.loginTmpl.Execute(w, data)
}

// RenderFactors writes the multi-factor challenge page. Factors are rendering
// fragments produced by registered providers, so they are emitted unescaped.
func (tr *templateRenderer) RenderFactors(w http.ResponseWriter, data *FactorsPageData) error {
	fragments := make([]template.HTML, 0, len(data.Factors))
	for _, factor := range data.Factors {
		fragments = append(fragments, template.HTML(factor))
	}

	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeHTML)
	return tr.factorsTmpl.Execute(w, struct{ Fragments []template.HTML }{Fragments: fragments})
}
