package router

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/inkstream/internal/handler"
	"github.com/rs/zerolog"
)

// Setup configures the gin engine, session store and route table around
// an already constructed handler set. templateGlob points at the HTML
// templates relative to the working directory.
func Setup(api *handler.API, sessionSecret, templateGlob string, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("inkstream_session", store))
	r.Use(api.LoadCurrentUser())

	r.LoadHTMLGlob(templateGlob)

	r.GET("/register", api.ShowRegisterPage)
	r.POST("/register", api.Register)
	r.GET("/login", api.ShowLoginPage)
	r.POST("/login", api.Login)
	r.GET("/logout", api.Logout)

	r.GET("/", api.ShowHome)
	r.GET("/post/:id", api.ShowPost)
	r.POST("/post/:id", handler.AuthRequired(), api.AddComment)

	admin := r.Group("", handler.AdminRequired())
	{
		admin.GET("/new-post", api.ShowNewPost)
		admin.POST("/new-post", api.CreatePost)
		admin.GET("/edit-post/:id", api.ShowEditPost)
		admin.POST("/edit-post/:id", api.UpdatePost)
		admin.GET("/delete/:id", api.DeletePost)
	}

	r.GET("/about", api.ShowAbout)
	r.GET("/contact", api.ShowContact)
	r.POST("/contact", api.SubmitContact)

	return r
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("ip", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
