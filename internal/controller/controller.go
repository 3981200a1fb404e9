package controller

import (
	"errors"

	appcontext "github.com/SakadaKry/CertVault/internal/app_context"
	"github.com/SakadaKry/CertVault/internal/auth"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index       *IndexController
	Auth        *AuthController
	OAuth       *OAuthController
	User        *UserController
	Certificate *CertificateController
	Template    *TemplateController
	Admin       *AdminController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	googleOAuthConfig := &oauth2.Config{
		ClientID:     app.Config.Auth.GoogleOAuthConfig.ClientID,
		ClientSecret: app.Config.Auth.GoogleOAuthConfig.ClientSecret,
		RedirectURL:  app.Config.Auth.GoogleOAuthConfig.RedirectURL,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}

	return &Controller{
		Index:       &IndexController{baseController: bc},
		Auth:        &AuthController{baseController: bc},
		OAuth:       &OAuthController{baseController: bc, googleOAuthConfig: googleOAuthConfig},
		User:        &UserController{baseController: bc},
		Certificate: &CertificateController{baseController: bc},
		Template:    &TemplateController{baseController: bc},
		Admin:       &AdminController{baseController: bc},
	}
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	payload, ok := user.(auth.JWTPayload)
	if !ok {
		return nil, errors.New("user in context has unexpected type")
	}

	return &payload, nil
}
