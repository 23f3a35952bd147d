package v1

import (
	"log"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/user"
	"jobboard/internal/infrastructure/cache"
	"jobboard/internal/notify"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config     config.Config
	DB         database.DB
	Cache      *cache.Redis
	Dispatcher notify.Dispatcher
	JWT        jwt.Service
	Logger     *log.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	userRepo := repository.NewPostgresUserRepository(d.DB)
	seekerRepo := repository.NewPostgresSeekerRepository(d.DB)
	employerRepo := repository.NewPostgresEmployerRepository(d.DB)
	jobRepo := repository.NewPostgresJobRepository(d.DB)
	applicationRepo := repository.NewPostgresApplicationRepository(d.DB)
	notificationRepo := repository.NewPostgresNotificationRepository(d.DB)

	authUC := usecase.NewAuthUsecase(userRepo, d.JWT)
	profileUC := usecase.NewProfileUsecase(seekerRepo, employerRepo, jobRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo)
	recommendationUC := usecase.NewRecommendationUsecase(seekerRepo, jobRepo, employerRepo, d.Cache, d.Logger)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, seekerRepo, employerRepo, d.Dispatcher)
	adminUC := usecase.NewAdminUsecase(jobRepo, userRepo, employerRepo, d.Dispatcher, d.Cache, d.Logger)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)

	authHandler := handler.NewAuthHandler(authUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	jobHandler := handler.NewJobHandler(jobUC)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC)
	applicationHandler := handler.NewApplicationHandler(applicationUC)
	adminHandler := handler.NewAdminHandler(adminUC)
	notificationHandler := handler.NewNotificationHandler(notificationUC)

	authMw := middleware.NewAuthMiddleware(d.JWT, userRepo)

	authHandler.RegisterRoutes(r.Group("/auth"))

	seekerOnly := r.Group("", authMw.Middleware(), authMw.RequireRole(user.RoleSeeker))
	employerOnly := r.Group("", authMw.Middleware(), authMw.RequireRole(user.RoleEmployer))
	adminOnly := r.Group("", authMw.Middleware(), authMw.RequireRole(user.RoleAdmin))
	anyUser := r.Group("", authMw.Middleware())

	profileHandler.RegisterSeekerRoutes(seekerOnly.Group("/seekers"))
	profileHandler.RegisterEmployerRoutes(employerOnly.Group("/employers"))

	// Employer job routes register first so GET /jobs/mine is matched ahead
	// of the public GET /jobs/:job_id.
	jobHandler.RegisterEmployerRoutes(employerOnly.Group("/jobs"))
	jobHandler.RegisterPublicRoutes(r.Group("/jobs"))

	recommendationHandler.RegisterSeekerRoutes(seekerOnly.Group("/recommendations"))
	recommendationHandler.RegisterEmployerRoutes(employerOnly.Group("/recommendations"))

	applicationHandler.RegisterSeekerRoutes(seekerOnly)
	applicationHandler.RegisterEmployerRoutes(employerOnly)

	notificationHandler.RegisterRoutes(anyUser.Group("/notifications"))

	adminHandler.RegisterRoutes(adminOnly.Group("/admin"))
}
