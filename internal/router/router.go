package router

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"github.com/Anushka-Bajpai23/Stree-Aware/internal/config"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/handlers"
	"github.com/Anushka-Bajpai23/Stree-Aware/internal/models"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitExceeded(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Try again later."})
}

func Setup(log *zap.Logger, questionnaire *models.Questionnaire) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("streeaware_session", store))

	router.Use(CSRFProtection())
	router.Use(UserLoaderMiddleware(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
	})

	authHandler := handlers.NewAuthHandler(log)
	wizardHandler := handlers.NewWizardHandler(log, questionnaire)
	resultsHandler := handlers.NewResultsHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitExceeded,
		KeyFunc:      keyFunc,
	})

	router.GET("/", func(c *gin.Context) {
		if _, isLoggedIn := c.Get("user"); isLoggedIn {
			c.Redirect(http.StatusFound, "/assessment")
			return
		}
		csrfToken, _ := c.Get("csrf_token")
		c.JSON(http.StatusOK, gin.H{
			"message":    "Welcome. Sign up or log in to start an assessment.",
			"csrf_token": csrfToken,
		})
	})

	router.POST("/signup", limiter, authHandler.Signup)
	router.POST("/login", limiter, authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	authorized := router.Group("/")
	authorized.Use(AuthRequired())
	{
		assessmentRoutes := authorized.Group("/assessment")
		{
			assessmentRoutes.GET("", wizardHandler.Start)
			assessmentRoutes.GET("/step/:step", wizardHandler.ShowStep)
			assessmentRoutes.POST("/step/:step", wizardHandler.SubmitStep)
		}

		authorized.GET("/results", resultsHandler.List)
		authorized.GET("/results/chart", resultsHandler.Chart)
		authorized.GET("/result/:id", resultsHandler.Show)
	}

	return router
}
