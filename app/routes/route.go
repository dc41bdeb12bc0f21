package routes

import (
	"net/http"

	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/configs"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/handlers/api"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/middlewares"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/orcamento"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/repositories"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/services"
	"github.com/ecolarcontatos-glitch/site-ecolar-sub000/app/utils/sessions"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV) *mux.Router {
	rnd := render.New()

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	postRepo := repositories.NewPostRepository(db)
	testimonialRepo := repositories.NewTestimonialRepository(db)
	inspirationRepo := repositories.NewInspirationRepository(db)
	siteConfigRepo := repositories.NewSiteConfigRepository(db)

	blobClient := services.NewHTTPBlobClient(env.BlobBaseURL, env.BlobToken)
	uploadSvc := services.NewUploadService(blobClient, env.MaxUploadBytes)
	keyVerifier := services.NewStaticKeyVerifier(env.AdminAPIKey)
	credVerifier := services.NewBcryptCredentialVerifier(env.AdminUser, env.AdminPasswordHash)

	registry := orcamento.NewRegistry(env.OrcamentoDataDir)
	cartSession := sessions.NewCartSession(env.SessionKey)

	productHandler := api.NewProductHandler(productRepo, categoryRepo, rnd)
	categoryHandler := api.NewCategoryHandler(categoryRepo, rnd)
	postHandler := api.NewPostHandler(postRepo, rnd)
	testimonialHandler := api.NewTestimonialHandler(testimonialRepo, rnd)
	inspirationHandler := api.NewInspirationHandler(inspirationRepo, rnd)
	siteConfigHandler := api.NewSiteConfigHandler(siteConfigRepo, rnd)
	uploadHandler := api.NewUploadHandler(uploadSvc, rnd)
	authHandler := api.NewAuthHandler(credVerifier, rnd)
	orcamentoHandler := api.NewOrcamentoHandler(registry, productRepo, siteConfigRepo, cartSession, rnd, env.WhatsAppPhone)
	diagnosticsHandler := api.NewDiagnosticsHandler(db, env, rnd)

	router := mux.NewRouter()
	router.Use(middlewares.RecoverMiddleware(rnd))
	router.Use(middlewares.LoggingMiddleware)

	apiRouter := router.PathPrefix("/api").Subrouter()

	// Public reads.
	apiRouter.HandleFunc("/produtos", productHandler.List).Methods(http.MethodGet)
	apiRouter.HandleFunc("/produtos/{id}", productHandler.Get).Methods(http.MethodGet)
	apiRouter.HandleFunc("/categorias", categoryHandler.List).Methods(http.MethodGet)
	apiRouter.HandleFunc("/categorias/{id}", categoryHandler.Get).Methods(http.MethodGet)
	apiRouter.HandleFunc("/posts", postHandler.List).Methods(http.MethodGet)
	apiRouter.HandleFunc("/posts/{id}", postHandler.Get).Methods(http.MethodGet)
	apiRouter.HandleFunc("/depoimentos", testimonialHandler.List).Methods(http.MethodGet)
	apiRouter.HandleFunc("/depoimentos/{id}", testimonialHandler.Get).Methods(http.MethodGet)
	apiRouter.HandleFunc("/inspiracoes", inspirationHandler.List).Methods(http.MethodGet)
	apiRouter.HandleFunc("/inspiracoes/{id}", inspirationHandler.Get).Methods(http.MethodGet)
	apiRouter.HandleFunc("/configuracoes", siteConfigHandler.Get).Methods(http.MethodGet)

	// Quote cart: browser-scoped via session cookie, no admin key.
	apiRouter.HandleFunc("/orcamento", orcamentoHandler.Get).Methods(http.MethodGet)
	apiRouter.HandleFunc("/orcamento", orcamentoHandler.Clear).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/orcamento/itens", orcamentoHandler.AddItem).Methods(http.MethodPost)
	apiRouter.HandleFunc("/orcamento/itens", orcamentoHandler.UpdateQuantity).Methods(http.MethodPut)
	apiRouter.HandleFunc("/orcamento/itens", orcamentoHandler.RemoveItem).Methods(http.MethodDelete)
	apiRouter.HandleFunc("/orcamento/whatsapp", orcamentoHandler.WhatsAppLink).Methods(http.MethodGet)

	apiRouter.HandleFunc("/admin/login", authHandler.Login).Methods(http.MethodPost)

	// Everything mutating the catalog sits behind the admin key.
	adminRouter := apiRouter.NewRoute().Subrouter()
	adminRouter.Use(middlewares.AdminAPIKeyMiddleware(keyVerifier, rnd))

	adminRouter.HandleFunc("/produtos", productHandler.Create).Methods(http.MethodPost)
	adminRouter.HandleFunc("/produtos/{id}", productHandler.Update).Methods(http.MethodPut)
	adminRouter.HandleFunc("/produtos/{id}", productHandler.Delete).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/categorias", categoryHandler.Create).Methods(http.MethodPost)
	adminRouter.HandleFunc("/categorias/{id}", categoryHandler.Update).Methods(http.MethodPut)
	adminRouter.HandleFunc("/categorias/{id}", categoryHandler.Delete).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/posts", postHandler.Create).Methods(http.MethodPost)
	adminRouter.HandleFunc("/posts/{id}", postHandler.Update).Methods(http.MethodPut)
	adminRouter.HandleFunc("/posts/{id}", postHandler.Delete).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/depoimentos", testimonialHandler.Create).Methods(http.MethodPost)
	adminRouter.HandleFunc("/depoimentos/{id}", testimonialHandler.Update).Methods(http.MethodPut)
	adminRouter.HandleFunc("/depoimentos/{id}", testimonialHandler.Delete).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/inspiracoes", inspirationHandler.Create).Methods(http.MethodPost)
	adminRouter.HandleFunc("/inspiracoes/{id}", inspirationHandler.Update).Methods(http.MethodPut)
	adminRouter.HandleFunc("/inspiracoes/{id}", inspirationHandler.Delete).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/configuracoes", siteConfigHandler.Update).Methods(http.MethodPut)
	adminRouter.HandleFunc("/upload", uploadHandler.Upload).Methods(http.MethodPost)
	adminRouter.HandleFunc("/test-db", diagnosticsHandler.TestDB).Methods(http.MethodGet)
	adminRouter.HandleFunc("/test-config", diagnosticsHandler.TestConfig).Methods(http.MethodGet)

	return router
}
