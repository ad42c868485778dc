package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/mazebench-api/api"
	api_i "github.com/beka-birhanu/mazebench-api/api/i"
	"github.com/beka-birhanu/mazebench-api/api/identity"
	mazeapi "github.com/beka-birhanu/mazebench-api/api/mazes"
	"github.com/beka-birhanu/mazebench-api/config"
	"github.com/beka-birhanu/mazebench-api/infrastruture/leaderboard"
	"github.com/beka-birhanu/mazebench-api/infrastruture/repo"
	"github.com/beka-birhanu/mazebench-api/infrastruture/token"
	"github.com/beka-birhanu/mazebench-api/service"
	"github.com/beka-birhanu/mazebench-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const leaderboardTTLSeconds = 30 * 24 * 60 * 60

// Global variables for dependencies
var (
	mongoClient         *mongo.Client
	redisClient         *redis.Client
	userRepo            i.UserRepo
	mazeRepo            i.MazeRepo
	evaluationRepo      i.EvaluationRepo
	solverLeaderboard   i.Leaderboard
	jwtTokenizer        i.Tokenizer
	authService         i.Authenticator
	mazeService         i.MazeGenerator
	evaluationService   i.SolutionScorer
	authController      api_i.Controller
	benchmarkController api_i.Controller
	router              *api.Router
	appLogger           *log.Logger
)

func newLogger(prefix, color string) *log.Logger {
	return log.New(os.Stdout, fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset), log.LstdFlags)
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs().DBUser, config.Envs().DBPassword, config.Envs().DBHost, config.Envs().DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Printf("Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Printf("MongoDB ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs().RedisHost, config.Envs().RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Printf("Redis ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Connected to Redis")
}

func initRepos() {
	userRepo = repo.NewUserRepo(mongoClient, config.Envs().DBName, "users")
	mazeRepo = repo.NewMazeRepo(mongoClient, config.Envs().DBName, "mazes")
	evaluationRepo = repo.NewEvaluationRepo(mongoClient, config.Envs().DBName, "evaluations")
	appLogger.Println("Repositories initialized")
}

func initLeaderboard() {
	var err error
	solverLeaderboard, err = leaderboard.NewRedisLeaderboard(redisClient, "mazebench", leaderboardTTLSeconds)
	if err != nil {
		appLogger.Printf("Creating leaderboard: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Leaderboard initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs().JWTSecret, config.Envs().JWTIssuer)
	appLogger.Println("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Printf("Creating auth service: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Auth service initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(mazeRepo, config.ProfileFor, newLogger("GENERATOR", config.ColorCyan))
	if err != nil {
		appLogger.Printf("Creating maze service: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Maze service initialized")
}

func initEvaluationService() {
	var err error
	evaluationService, err = service.NewEvaluationService(mazeRepo, evaluationRepo, solverLeaderboard, newLogger("SCORER", config.ColorMagenta))
	if err != nil {
		appLogger.Printf("Creating evaluation service: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Evaluation service initialized")
}

func initControllers() {
	var err error
	benchmarkController, err = mazeapi.NewBenchmarkController(mazeService, evaluationService, solverLeaderboard)
	if err != nil {
		appLogger.Printf("Creating benchmark controller: %v", err)
		os.Exit(1)
	}
	authController = identity.NewIdentityServer(authService)
	appLogger.Println("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs().HostIP, config.Envs().RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, benchmarkController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Println("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger = newLogger("APP", config.ColorGreen)
	gin.SetMode(config.Envs().GinMode)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos()
	initLeaderboard()
	initJWTTokenizer()
	initAuthService()
	initMazeService()
	initEvaluationService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Printf("Starting server: %v", err)
		os.Exit(1)
	}
}
