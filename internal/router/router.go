package router

import (
	"time"

	"vitrine/internal/config"
	"vitrine/internal/handler"
	"vitrine/internal/infra"
	"vitrine/internal/middleware"
	"vitrine/internal/repository"
	"vitrine/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Storage/Redis.
//
// Routes are RPC-shaped (/v1/<grupo>/<operacao>) so the callable surface
// keeps the operation names the storefront client was written against.
func New(cfg *config.Config, storage infra.Storage, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(storage)
	clienteRepo := repository.NewClienteRepository(storage)
	fornecedorRepo := repository.NewFornecedorRepository(storage)
	produtoRepo := repository.NewProdutoRepository(storage)
	pedidoRepo := repository.NewPedidoRepository(storage)

	// Global middleware chain (order matters). Session runs on every request
	// so public operations also see the identity when one is present.
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP
	r.Use(middleware.Session(cfg.SessionSecret, cfg.SessionCookieName, userRepo))

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo)
	fornecedorSvc := service.NewFornecedorService(fornecedorRepo)
	produtoSvc := service.NewProdutoService(produtoRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cfg)
	clientesH := handler.NewClientesHandler(clienteSvc)
	fornecedoresH := handler.NewFornecedoresHandler(fornecedorSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc, rdb)
	catalogoH := handler.NewCatalogoHandler(produtoSvc, rdb)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(storage, rdb))

	// Public operations
	r.POST("/v1/auth/session", middleware.SessionRateLimiter(), authH.Session)
	r.GET("/v1/auth/me", authH.Me)
	r.POST("/v1/auth/logout", authH.Logout)
	r.GET("/v1/fornecedor/obterAtivo", fornecedoresH.ObterAtivo)
	r.GET("/v1/produto/obter", catalogoH.Obter)
	r.GET("/v1/produto/listarPorFornecedor", catalogoH.ListarPorFornecedor)
	r.POST("/v1/pedido/criar", pedidosH.Criar) // guest checkout

	// Protected operations — identity must resolve before the body runs
	v1 := r.Group("/v1", middleware.RequireAuth())
	{
		v1.POST("/cliente/criar", clientesH.Criar)
		v1.GET("/cliente/obter", clientesH.Obter)

		v1.POST("/fornecedor/criar", fornecedoresH.Criar)
		v1.GET("/fornecedor/obter", fornecedoresH.Obter)

		v1.POST("/produto/criar", produtosH.Criar)
		v1.POST("/produto/atualizar", produtosH.Atualizar)

		v1.GET("/pedido/listarCliente", pedidosH.ListarCliente)
		v1.GET("/pedido/listarFornecedor", pedidosH.ListarFornecedor)
		v1.POST("/pedido/atualizarStatus", pedidosH.AtualizarStatus)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
