package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/mazebench-api/infrastruture/repo"
	"github.com/beka-birhanu/mazebench-api/maze"
	"github.com/beka-birhanu/mazebench-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultLeaderboardSize = 10

// BenchmarkController manages maze generation and solution scoring over HTTP.
type BenchmarkController struct {
	mazes       i.MazeGenerator
	scorer      i.SolutionScorer
	leaderboard i.Leaderboard
}

// NewBenchmarkController initializes a BenchmarkController.
func NewBenchmarkController(mazes i.MazeGenerator, scorer i.SolutionScorer, leaderboard i.Leaderboard) (*BenchmarkController, error) {
	if mazes == nil || scorer == nil || leaderboard == nil {
		return nil, errors.New("benchmark controller requires maze, scorer, and leaderboard services")
	}
	return &BenchmarkController{
		mazes:       mazes,
		scorer:      scorer,
		leaderboard: leaderboard,
	}, nil
}

// RegisterPublic registers public routes.
func (bc *BenchmarkController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID", bc.mazeByID)
	}
	route.GET("/leaderboard", bc.topScores)
}

// RegisterProtected registers protected routes.
func (bc *BenchmarkController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", bc.generate)
		mazes.POST("/:ID/solutions", bc.solve)
	}
}

// generate handles maze generation requests.
func (bc *BenchmarkController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	difficulty, err := maze.ParseDifficulty(request.Difficulty)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := bc.mazes.Generate(ctx, difficulty)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "maze generation failed"})
		return
	}

	response, err := newMazeResponse(record)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, response)
}

// mazeByID retrieves a frozen maze.
func (bc *BenchmarkController) mazeByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	record, err := bc.mazes.ByID(ctx, id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repo.ErrMazeNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	response, err := newMazeResponse(record)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// solve handles solution submissions. Move strings are parsed here, at the
// API boundary; the engine only ever sees typed moves.
func (bc *BenchmarkController) solve(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	var request SolutionRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	moves := make([]maze.Move, len(request.Moves))
	for idx, raw := range request.Moves {
		move, err := maze.ParseMove(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		moves[idx] = move
	}

	evaluation, err := bc.scorer.Score(ctx, id, request.Solver, moves)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repo.ErrMazeNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newSolutionResponse(evaluation))
}

// topScores serves the solver leaderboard.
func (bc *BenchmarkController) topScores(ctx *gin.Context) {
	limit := int64(defaultLeaderboardSize)
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	scores, err := bc.leaderboard.Top(ctx, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "leaderboard unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, &LeaderboardResponse{Scores: scores})
}
