package main

import (
	appcontext "github.com/SakadaKry/CertVault/internal/app_context"
	"github.com/SakadaKry/CertVault/internal/auth"
	"github.com/SakadaKry/CertVault/internal/config"
	"github.com/SakadaKry/CertVault/internal/controller"
	"github.com/SakadaKry/CertVault/internal/database"
	"github.com/SakadaKry/CertVault/internal/env"
	filestorage "github.com/SakadaKry/CertVault/internal/file_storage"
	"github.com/SakadaKry/CertVault/internal/mailer"
	"github.com/SakadaKry/CertVault/internal/middleware"
	ratelimiter "github.com/SakadaKry/CertVault/internal/rate_limiter"
	"github.com/SakadaKry/CertVault/internal/repository"
	"github.com/SakadaKry/CertVault/internal/route"
	"github.com/SakadaKry/CertVault/internal/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	s3, err := filestorage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)

	var mail mailer.Client
	switch cfg.Mail.PROVIDER {
	case "gmail":
		mail = mailer.NewGmailMailer(cfg.Mail.GMAIL.USERNAME, cfg.Mail.GMAIL.PASSWORD, logger)
	default:
		mail = mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	}

	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, jwtService, s3)
	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
		JWTService: jwtService,
		S3:         s3,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")

	route.V1_Certificates(rApi, _controller.Certificate, _controller.Template, _middleware)
	route.V1_Admin(rApi, _controller.Admin, _controller.Template, _middleware)
	route.V1_Auth(rApi, _controller.Auth)
	route.V1_OAuth(rApi, _controller.OAuth)
	route.V1_Me(rApi, _controller.User, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panic("Error running server: %v \n", err)
	}
}
