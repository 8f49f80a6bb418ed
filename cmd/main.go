package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"usersvc/config"
	"usersvc/internal/pkg/cache"
	"usersvc/internal/pkg/database"
	"usersvc/internal/pkg/events"
	"usersvc/internal/pkg/logger"
	"usersvc/internal/pkg/middleware"
	"usersvc/internal/pkg/password"
	"usersvc/internal/pkg/token"

	// Camadas para Injeção de Dependências
	"usersvc/internal/api/health"
	"usersvc/internal/api/router"
	"usersvc/internal/api/user"
	"usersvc/internal/repository/emailrepo"
	"usersvc/internal/repository/userrepo"
	"usersvc/internal/service/healthservice"
	"usersvc/internal/service/userservice"
)

// @title User Service API
// @version 2.0
// @description Cadastro, autenticação e verificação de e-mail de usuários.
// @BasePath /
// @securityDefinitions.basic BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	if err := godotenv.Load(); err != nil {
		// As variáveis essenciais podem estar no ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	// 1. Configuração e Logger
	cfg := config.LoadConfig()
	zl, err := logger.New(logger.Options{Level: cfg.LogLevel, Folder: cfg.LogFolder, FileName: cfg.LogFileName})
	if err != nil {
		log.Fatalf("❌ Falha ao inicializar o logger: %v", err)
	}
	defer zl.Sync()
	var log logger.Logger = zl
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Redis (rate limit e stream de eventos)
	rdb := cache.NewRedis(cfg.RedisAddr)
	defer rdb.Close()
	cacheClient := cache.NewRedisClient(rdb)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warn("Redis indisponível na inicialização.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
	} else {
		log.Info("Conexão Redis estabelecida.", nil)
	}
	publisher := events.NewRedisPublisher(rdb, log)

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	var userRepo userrepo.Store = userrepo.NewUserRepository(db, cfg.DBTimeout, log)
	if cfg.UserCacheTTL > 0 {
		userRepo = userrepo.NewCachedUserRepository(userRepo, cacheClient, cfg.UserCacheTTL, log)
	}
	emailRepo := emailrepo.NewEmailRepository(db, cfg.DBTimeout, log)
	log.Debug("Repositórios inicializados.", nil)

	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	userSvc := userservice.NewService(
		userRepo,
		emailRepo,
		password.NewBcryptHasher(cfg.BcryptCost),
		publisher,
		tokenSvc,
		userservice.Config{VerifyEmailTopic: cfg.VerifyEmailTopic, VerifyEmailExpiry: cfg.VerifyEmailExpiry},
		log,
	)
	healthSvc := healthservice.NewService(db, cfg.DBTimeout, log)
	log.Debug("Serviços inicializados.", nil)

	userHandler := user.NewHandler(userSvc, log, cfg.IsTest())
	healthHandler := health.NewHandler(healthSvc, log)

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(router.Options{
		UserHandler:   userHandler,
		HealthHandler: healthHandler,
		Auth:          middleware.NewAuthMiddleware(userSvc, tokenSvc, log),
		Global: []router.Middleware{
			middleware.Logging(log),
			middleware.Recover(log),
			middleware.SecurityHeaders,
			middleware.CORS,
			middleware.RateLimiter(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod, log),
		},
		Logger: log,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor ouvindo na porta.", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
