package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"linkhop/internal/service"
)

type RedirectController struct {
	resolver service.ResolverService
	homeURL  string
}

func NewRedirectController(resolver service.ResolverService, homeURL string) *RedirectController {
	return &RedirectController{
		resolver: resolver,
		homeURL:  homeURL,
	}
}

// Redirect handles GET /s/:code
func (rc *RedirectController) Redirect(c *gin.Context) {
	rc.redirect(c, c.Param("code"))
}

// RedirectQuery handles GET /s?code=... - the query-parameter variant of the
// same resolution logic
func (rc *RedirectController) RedirectQuery(c *gin.Context) {
	rc.redirect(c, c.Query("code"))
}

// redirect resolves the code and always answers with a redirect: the
// destination on a hit, the home URL on a miss or failure. 307 keeps
// browsers and intermediaries from caching the target, so every visit hits
// the click accounting again.
func (rc *RedirectController) redirect(c *gin.Context, code string) {
	destination, err := rc.resolver.Resolve(c.Request.Context(), code)
	if err != nil {
		c.Redirect(http.StatusTemporaryRedirect, rc.homeURL)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, destination)
}
