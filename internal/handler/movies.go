package handler

import "github.com/gin-gonic/gin"

// ListMovies GET /movies/
func (h *Handler) ListMovies(c *gin.Context) {
	movies, err := h.Query.ListMovies(c.Request.Context())
	respond(c, movies, err)
}

// SearchByTitle GET /movies/search/title?title=The Matrix
func (h *Handler) SearchByTitle(c *gin.Context) {
	movies, err := h.Query.SearchByTitle(c.Request.Context(), c.Query("title"))
	respond(c, movies, err)
}

// SearchByYear GET /movies/search/year?year=1999
func (h *Handler) SearchByYear(c *gin.Context) {
	movies, err := h.Query.SearchByYear(c.Request.Context(), c.Query("year"))
	respond(c, movies, err)
}

// SearchByDirector GET /movies/search/director?director=Quentin Tarantino
func (h *Handler) SearchByDirector(c *gin.Context) {
	movies, err := h.Query.SearchByDirector(c.Request.Context(), c.Query("director"))
	respond(c, movies, err)
}

// SearchByActors GET /movies/search/actors?actors=Leonardo DiCaprio, Brad Pitt
// 返回任意一位演员参演的电影
func (h *Handler) SearchByActors(c *gin.Context) {
	movies, err := h.Query.SearchByActors(c.Request.Context(), c.Query("actors"))
	respond(c, movies, err)
}

// SearchByCast GET /movies/search/cast?cast=Johnny Depp, Helena Bonham Carter
// 返回所有演员共同参演的电影
func (h *Handler) SearchByCast(c *gin.Context) {
	movies, err := h.Query.SearchByCast(c.Request.Context(), c.Query("cast"))
	respond(c, movies, err)
}

// Cast GET /movies/cast?title=Fight Club
func (h *Handler) Cast(c *gin.Context) {
	people, err := h.Query.CastOf(c.Request.Context(), c.Query("title"))
	respond(c, people, err)
}

// Rating GET /movies/rating?title=Toy Story
func (h *Handler) Rating(c *gin.Context) {
	ratings, err := h.Query.RatingsOf(c.Request.Context(), c.Query("title"))
	respond(c, ratings, err)
}

// TopRated GET /movies/top-rated?top=10，top 默认 50
func (h *Handler) TopRated(c *gin.Context) {
	top, present := c.GetQuery("top")
	movies, err := h.Query.TopRated(c.Request.Context(), top, present)
	respond(c, movies, err)
}
