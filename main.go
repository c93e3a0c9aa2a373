package main

import (
	"log"
	"strings"
	"time"

	"cloudbox/auth"
	"cloudbox/config"
	"cloudbox/db"
	"cloudbox/handlers"
	"cloudbox/models"
	"cloudbox/storage"
	"cloudbox/utils"
	"cloudbox/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

func main() {
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points can override that

	/*
	 *	File manager
	 */
	gate := &auth.Gate{
		Base:          router,
		Secret:        config.ACCESS_PASSWORD,
		OpenDownloads: config.OPEN_DOWNLOADS,
	}
	router.POST("/login", auth.Login(config.ACCESS_PASSWORD))
	gate.GET("/", web.FileList)
	gate.POST("/upload", web.FileUpload)
	gate.POST("/delete", web.FileDelete)
	router.GET("/preview/*key", gate.Download(web.FilePreview))
	router.GET("/thumb/*key", gate.Download(web.FileThumb))
	// Bare GET /<key> is a download
	router.NoRoute(gate.Download(web.FileDownload))

	/*
	 *	Chat API
	 */
	api := router.Group("/api")
	if !config.DEBUG_MODE {
		api.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	api.POST("/register", handlers.UserRegister)
	api.POST("/login", handlers.UserLogin)
	api.PUT("/user/nickname", handlers.UserUpdateNickname)
	api.GET("/user/:qq", handlers.UserGet)
	api.POST("/message", handlers.MessagePost)
	api.GET("/messages", handlers.MessageList)
	api.GET("/messages/live", handlers.MessageSocket)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
