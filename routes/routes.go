package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/opencourt/tournament-api/handlers"
)

// SetupRoutes собирает все маршруты API на переданном роутере.
func SetupRoutes(
	router *chi.Mux,
	athleteHandler *handlers.AthleteHandler,
	tournamentHandler *handlers.TournamentHandler,
	bracketHandler *handlers.BracketHandler,
	matchHandler *handlers.MatchHandler,
	registrationHandler *handlers.RegistrationHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/atletas", func(r chi.Router) {
		r.Get("/", athleteHandler.ListHandler)
		r.Post("/", athleteHandler.CreateHandler)
		r.Get("/{atletaID}", athleteHandler.GetByIDHandler)
		r.Post("/{atletaID}/foto", athleteHandler.UploadPhotoHandler)
	})

	router.Get("/ranking", athleteHandler.RankingHandler)

	router.Route("/torneios", func(r chi.Router) {
		r.Get("/", tournamentHandler.ListHandler)
		r.Post("/", tournamentHandler.CreateHandler)
		r.Get("/{torneioID}", tournamentHandler.GetByIDHandler)
		r.Post("/{torneioID}/categorias", tournamentHandler.CreateCategoryHandler)
		r.Get("/{torneioID}/chaveamento/{categoriaID}", bracketHandler.GetHandler)
		r.Post("/{torneioID}/chaveamento/{categoriaID}/gerar", bracketHandler.GenerateHandler)
		r.Get("/{torneioID}/jogos", matchHandler.ListByTournamentHandler)
		r.Get("/{torneioID}/inscricoes", registrationHandler.ListByTournamentHandler)
	})

	router.Post("/jogos/{jogoID}/resultado", matchHandler.SubmitResultHandler)

	router.Post("/inscricoes", registrationHandler.CreateHandler)

	router.Get("/ws/torneios/{torneioID}", webSocketHandler.ServeWs)
}
